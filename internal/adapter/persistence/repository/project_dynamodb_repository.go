package repository

import (
	"context"
	"sort"
	"strings"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsKeyIndex         = "key-index"
	projectKeyPrefix         = "key#"
	projectNamePrefix        = "name#"
)

type projectItem struct {
	ID                  string `dynamodbav:"id"`
	Name                string `dynamodbav:"name"`
	Key                 string `dynamodbav:"key"`
	Description         string `dynamodbav:"description,omitempty"`
	CustomerID          string `dynamodbav:"customer_id,omitempty"`
	Status              int    `dynamodbav:"status"`
	MasterID            string `dynamodbav:"master_id"`
	DepartmentID        string `dynamodbav:"department_id,omitempty"`
	ManagerID           string `dynamodbav:"manager_id,omitempty"`
	CoefficientSaturday string `dynamodbav:"coefficient_saturday,omitempty"`
	CoefficientSunday   string `dynamodbav:"coefficient_sunday,omitempty"`
	auditItem
}

// projectMarkerItem reserves a project key or name.
type projectMarkerItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: key-index (PK: key)
//
// Every project is written together with "key#..." and "name#..." marker
// items so that keys and names stay unique. Markers carry no master_id and
// are skipped by scans.

type ProjectDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	put, err := newPut(r.tableName, "id", toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}
	key, err := newPut(r.tableName, "id", projectMarkerItem{ID: projectKeyPrefix + p.Key, ProjectID: p.ID})
	if err != nil {
		return entities.Project{}, err
	}
	name, err := newPut(r.tableName, "id", projectMarkerItem{ID: projectNamePrefix + p.Name, ProjectID: p.ID})
	if err != nil {
		return entities.Project{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, key, name},
	})
	if err == nil {
		return p, nil
	}
	failed, ok := canceledAt(err)
	if !ok || len(failed) == 0 {
		return entities.Project{}, err
	}
	switch failed[0] {
	case 1:
		return entities.Project{}, interfaces.ErrKeyTaken
	case 2:
		return entities.Project{}, interfaces.ErrNameTaken
	default:
		return entities.Project{}, interfaces.ErrAlreadyExists
	}
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, "id", toProjectItem(p))
	if err != nil || !ok {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	if isProjectMarker(id) {
		return entities.Project{}, nil
	}
	it, found, err := getItem[projectItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByKey(ctx context.Context, key string) (entities.Project, error) {
	items, err := queryIndex[projectItem](ctx, r.ddb, r.tableName, projectsKeyIndex, "key", key)
	if err != nil || len(items) == 0 {
		return entities.Project{}, err
	}
	return fromProjectItem(items[0]), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	items, err := scanAll[projectItem](ctx, r.ddb, r.scanProjects())
	if err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *ProjectDynamoRepository) Count(ctx context.Context) (int, error) {
	in := r.scanProjects()
	in.Select = types.SelectCount
	total := 0
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ProjectDynamoRepository) scanProjects() *dynamodb.ScanInput {
	return &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_exists(#master_id)"),
		ExpressionAttributeNames: map[string]string{"#master_id": "master_id"},
	}
}

func isProjectMarker(id string) bool {
	return strings.HasPrefix(id, projectKeyPrefix) || strings.HasPrefix(id, projectNamePrefix)
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                  p.ID,
		Name:                p.Name,
		Key:                 p.Key,
		Description:         p.Description,
		CustomerID:          p.CustomerID,
		Status:              int(p.Status),
		MasterID:            p.MasterID,
		DepartmentID:        p.DepartmentID,
		ManagerID:           p.ManagerID,
		CoefficientSaturday: formatNullDecimal(p.CoefficientSaturday),
		CoefficientSunday:   formatNullDecimal(p.CoefficientSunday),
		auditItem:           toAuditItem(p.Audit),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:                  it.ID,
		Name:                it.Name,
		Key:                 it.Key,
		Description:         it.Description,
		CustomerID:          it.CustomerID,
		Status:              entities.ProjectStatus(it.Status),
		MasterID:            it.MasterID,
		DepartmentID:        it.DepartmentID,
		ManagerID:           it.ManagerID,
		CoefficientSaturday: parseNullDecimal(it.CoefficientSaturday),
		CoefficientSunday:   parseNullDecimal(it.CoefficientSunday),
		Audit:               fromAuditItem(it.auditItem),
	}
}

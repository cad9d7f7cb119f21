package repository

import (
	"context"
	"sort"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultProjectStepsTableName = "project_steps"
	projectStepsProjectIDIndex   = "project_id-index"
)

type projectStepItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Status      int    `dynamodbav:"status"`
	Position    int    `dynamodbav:"position"`
	Coefficient string `dynamodbav:"coefficient,omitempty"`
	Duration    string `dynamodbav:"duration,omitempty"`
	FlatRate    string `dynamodbav:"flat_rate,omitempty"`
	DailyRate   string `dynamodbav:"daily_rate,omitempty"`
	auditItem
}

// ProjectStepDynamoRepository persists ProjectStep entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Positions are claimed in the positions table under the project scope.

type ProjectStepDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectStepRepository = (*ProjectStepDynamoRepository)(nil)

func NewProjectStepDynamoRepository(ddb DynamoAPI) *ProjectStepDynamoRepository {
	return &ProjectStepDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECT_STEPS_TABLE", defaultProjectStepsTableName),
	}
}

func (r *ProjectStepDynamoRepository) Create(ctx context.Context, s entities.ProjectStep) (entities.ProjectStep, error) {
	err := createWithClaim(ctx, r.ddb, r.tableName, "id", toProjectStepItem(s), timesheet.ProjectScope(s.ProjectID), s.Position, s.ID)
	if err != nil {
		return entities.ProjectStep{}, err
	}
	return s, nil
}

// Update replaces a step. The position is not re-claimed; steps keep the
// position they were created with.
func (r *ProjectStepDynamoRepository) Update(ctx context.Context, s entities.ProjectStep) (entities.ProjectStep, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, "id", toProjectStepItem(s))
	if err != nil || !ok {
		return entities.ProjectStep{}, err
	}
	return s, nil
}

func (r *ProjectStepDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectStep, error) {
	it, found, err := getItem[projectStepItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.ProjectStep{}, err
	}
	return fromProjectStepItem(it), nil
}

func (r *ProjectStepDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.ProjectStep, error) {
	items, err := queryIndex[projectStepItem](ctx, r.ddb, r.tableName, projectStepsProjectIDIndex, "project_id", projectID)
	if err != nil {
		return nil, err
	}
	return fromProjectStepItems(items), nil
}

func (r *ProjectStepDynamoRepository) ListAll(ctx context.Context) ([]entities.ProjectStep, error) {
	items, err := scanAll[projectStepItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromProjectStepItems(items), nil
}

func fromProjectStepItems(items []projectStepItem) []entities.ProjectStep {
	out := make([]entities.ProjectStep, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectStepItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func toProjectStepItem(s entities.ProjectStep) projectStepItem {
	return projectStepItem{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		Name:        s.Name,
		Description: s.Description,
		Status:      int(s.Status),
		Position:    s.Position,
		Coefficient: formatNullDecimal(s.Coefficient),
		Duration:    intPtrToString(s.Duration),
		FlatRate:    formatNullDecimal(s.FlatRate),
		DailyRate:   formatNullDecimal(s.DailyRate),
		auditItem:   toAuditItem(s.Audit),
	}
}

func fromProjectStepItem(it projectStepItem) entities.ProjectStep {
	return entities.ProjectStep{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Name:        it.Name,
		Description: it.Description,
		Status:      entities.StepStatus(it.Status),
		Position:    it.Position,
		Coefficient: parseNullDecimal(it.Coefficient),
		Duration:    stringToIntPtr(it.Duration),
		FlatRate:    parseNullDecimal(it.FlatRate),
		DailyRate:   parseNullDecimal(it.DailyRate),
		Audit:       fromAuditItem(it.auditItem),
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxProjectKeyLen = 12

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrMasterProjectNotFound = errors.New("master project not found")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrInvalidProjectKey     = errors.New("invalid project key")
	ErrInvalidProjectStatus  = errors.New("invalid project status")
	ErrInvalidCoefficient    = errors.New("invalid coefficient")
	ErrProjectKeyTaken       = errors.New("project key already in use")
	ErrProjectNameTaken      = errors.New("project name already in use")
)

type CreateProjectInput struct {
	Name                string
	Key                 string
	Description         string
	CustomerID          string
	MasterID            string
	DepartmentID        string
	ManagerID           string
	Status              entities.ProjectStatus
	CoefficientSaturday decimal.NullDecimal
	CoefficientSunday   decimal.NullDecimal
}

type CopyProjectInput struct {
	Name      string
	WithSteps bool
}

// IProjectUseCase exposes project administration.
//
// Projects cannot be deleted; UpdateStatus moves them to an inactive state.

type IProjectUseCase interface {
	Create(ctx context.Context, actor string, in CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, actor, id string, status entities.ProjectStatus) (entities.Project, error)
	Copy(ctx context.Context, actor, id string, in CopyProjectInput) (entities.Project, error)
}

type ProjectUseCase struct {
	repo      interfaces.IProjectRepository
	stepRepo  interfaces.IProjectStepRepository
	sequencer *timesheet.Sequencer
	now       func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, stepRepo interfaces.IProjectStepRepository, positions interfaces.IPositionRepository) *ProjectUseCase {
	return &ProjectUseCase{
		repo:      repo,
		stepRepo:  stepRepo,
		sequencer: timesheet.NewSequencer(positions),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProjectUseCase) Create(ctx context.Context, actor string, in CreateProjectInput) (entities.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}
	key := strings.TrimSpace(in.Key)
	if key == "" || utf8.RuneCountInString(key) > maxProjectKeyLen {
		return entities.Project{}, ErrInvalidProjectKey
	}
	status := in.Status
	if status == 0 {
		status = entities.ProjectStatusOpen
	}
	if !status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if negative(in.CoefficientSaturday) || negative(in.CoefficientSunday) {
		return entities.Project{}, ErrInvalidCoefficient
	}

	if err := u.ensureKeyFree(ctx, key); err != nil {
		return entities.Project{}, err
	}

	masterID := strings.TrimSpace(in.MasterID)
	if masterID != "" {
		master, err := u.repo.GetByID(ctx, masterID)
		if err != nil {
			return entities.Project{}, err
		}
		if master.ID == "" {
			return entities.Project{}, ErrMasterProjectNotFound
		}
	}

	p := entities.Project{
		ID:                  uuid.NewString(),
		Name:                name,
		Key:                 key,
		Description:         strings.TrimSpace(in.Description),
		CustomerID:          strings.TrimSpace(in.CustomerID),
		Status:              status,
		MasterID:            masterID,
		DepartmentID:        strings.TrimSpace(in.DepartmentID),
		ManagerID:           strings.TrimSpace(in.ManagerID),
		CoefficientSaturday: in.CoefficientSaturday,
		CoefficientSunday:   in.CoefficientSunday,
	}
	if p.MasterID == "" {
		// projects without master are their own master
		p.MasterID = p.ID
	}
	if p.ManagerID == "" {
		p.ManagerID = actor
	}
	p.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, mapProjectCreateError(err)
	}
	log.Printf("[project][usecase] created project_id=%s key=%s", created.ID, created.Key)
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, actor, id string, status entities.ProjectStatus) (entities.Project, error) {
	if !status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status == status {
		return p, nil
	}
	p.Status = status
	p.Touch(actor, u.now())
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] status changed project_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// Copy creates a new project from id with a generated key PR<n>, n being the
// first number above the project count whose key is free. With WithSteps
// the steps are copied as open steps in their original order.
func (u *ProjectUseCase) Copy(ctx context.Context, actor, id string, in CopyProjectInput) (entities.Project, error) {
	src, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	key, err := u.copyKey(ctx)
	if err != nil {
		return entities.Project{}, err
	}

	p := entities.CopyProject(src, key)
	if name := strings.TrimSpace(in.Name); name != "" {
		p.Name = name
	}
	p.ID = uuid.NewString()
	p.MasterID = p.ID
	p.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, mapProjectCreateError(err)
	}
	log.Printf("[project][usecase] copied project_id=%s from=%s", created.ID, src.ID)

	if !in.WithSteps {
		return created, nil
	}
	steps, err := u.stepRepo.ListByProject(ctx, src.ID)
	if err != nil {
		return entities.Project{}, err
	}
	for _, s := range steps {
		step := entities.CopyStep(s)
		step.ID = uuid.NewString()
		step.ProjectID = created.ID
		step.Position, err = u.sequencer.Next(ctx, timesheet.ProjectScope(created.ID))
		if err != nil {
			return entities.Project{}, err
		}
		step.Touch(actor, u.now())
		if _, err := u.stepRepo.Create(ctx, step); err != nil {
			if errors.Is(err, interfaces.ErrPositionTaken) {
				return entities.Project{}, ErrPositionConflict
			}
			return entities.Project{}, err
		}
	}
	return created, nil
}

func (u *ProjectUseCase) ensureKeyFree(ctx context.Context, key string) error {
	existing, err := u.repo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return ErrProjectKeyTaken
	}
	return nil
}

// copyKey returns the first free key PR<n> with n above the project count.
// Every taken candidate belongs to a distinct project, so the loop ends
// after at most count+1 lookups.
func (u *ProjectUseCase) copyKey(ctx context.Context) (string, error) {
	count, err := u.repo.Count(ctx)
	if err != nil {
		return "", err
	}
	for n := count + 1; ; n++ {
		key := fmt.Sprintf("PR%d", n)
		existing, err := u.repo.GetByKey(ctx, key)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return key, nil
		}
	}
}

func mapProjectCreateError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrKeyTaken):
		return ErrProjectKeyTaken
	case errors.Is(err, interfaces.ErrNameTaken):
		return ErrProjectNameTaken
	default:
		return err
	}
}

func negative(v decimal.NullDecimal) bool {
	return v.Valid && v.Decimal.IsNegative()
}

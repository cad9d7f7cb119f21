package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStepNotFound      = errors.New("project step not found")
	ErrInvalidStepID     = errors.New("invalid project step id")
	ErrInvalidStepName   = errors.New("invalid project step name")
	ErrInvalidStepStatus = errors.New("invalid project step status")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrStepNameTaken     = errors.New("project step name already in use")
)

type CreateStepInput struct {
	Name        string
	Description string
	Status      entities.StepStatus
	Position    int
	Coefficient decimal.NullDecimal
	Duration    *int
	FlatRate    decimal.NullDecimal
	DailyRate   decimal.NullDecimal
}

// IProjectStepUseCase manages the ordered steps of a project.

type IProjectStepUseCase interface {
	Create(ctx context.Context, actor, projectID string, in CreateStepInput) (entities.ProjectStep, error)
	AddDefaultSteps(ctx context.Context, actor, projectID string, names []string) ([]entities.ProjectStep, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ProjectStep, error)
	UpdateStatus(ctx context.Context, actor, id string, status entities.StepStatus) (entities.ProjectStep, error)
}

type ProjectStepUseCase struct {
	repo        interfaces.IProjectStepRepository
	projectRepo interfaces.IProjectRepository
	sequencer   *timesheet.Sequencer
	now         func() time.Time
}

var _ IProjectStepUseCase = (*ProjectStepUseCase)(nil)

func NewProjectStepUseCase(repo interfaces.IProjectStepRepository, projectRepo interfaces.IProjectRepository, positions interfaces.IPositionRepository) *ProjectStepUseCase {
	return &ProjectStepUseCase{
		repo:        repo,
		projectRepo: projectRepo,
		sequencer:   timesheet.NewSequencer(positions),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProjectStepUseCase) Create(ctx context.Context, actor, projectID string, in CreateStepInput) (entities.ProjectStep, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.ProjectStep{}, ErrInvalidStepName
	}
	status := in.Status
	if status == 0 {
		status = entities.StepStatusOpen
	}
	if !status.Valid() {
		return entities.ProjectStep{}, ErrInvalidStepStatus
	}
	if in.Position < 0 {
		return entities.ProjectStep{}, ErrInvalidPosition
	}
	if negative(in.Coefficient) {
		return entities.ProjectStep{}, ErrInvalidCoefficient
	}

	projectID, err := u.requireProject(ctx, projectID)
	if err != nil {
		return entities.ProjectStep{}, err
	}
	existing, err := u.repo.ListByProject(ctx, projectID)
	if err != nil {
		return entities.ProjectStep{}, err
	}
	for _, s := range existing {
		if s.Name == name {
			return entities.ProjectStep{}, ErrStepNameTaken
		}
	}

	step := entities.ProjectStep{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		Position:    in.Position,
		Coefficient: in.Coefficient,
		Duration:    in.Duration,
		FlatRate:    in.FlatRate,
		DailyRate:   in.DailyRate,
	}
	return u.create(ctx, actor, step)
}

// AddDefaultSteps adds one open step per name. Names the project already
// has are skipped.
func (u *ProjectStepUseCase) AddDefaultSteps(ctx context.Context, actor, projectID string, names []string) ([]entities.ProjectStep, error) {
	projectID, err := u.requireProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	existing, err := u.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s.Name] = true
	}

	var created []entities.ProjectStep
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || taken[n] {
			continue
		}
		taken[n] = true
		step, err := u.create(ctx, actor, entities.ProjectStep{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Name:      n,
			Status:    entities.StepStatusOpen,
		})
		if err != nil {
			return created, err
		}
		created = append(created, step)
	}
	log.Printf("[step][usecase] default steps added project_id=%s count=%d", projectID, len(created))
	return created, nil
}

func (u *ProjectStepUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.ProjectStep, error) {
	projectID, err := u.requireProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByProject(ctx, projectID)
}

func (u *ProjectStepUseCase) UpdateStatus(ctx context.Context, actor, id string, status entities.StepStatus) (entities.ProjectStep, error) {
	if !status.Valid() {
		return entities.ProjectStep{}, ErrInvalidStepStatus
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectStep{}, ErrInvalidStepID
	}
	step, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectStep{}, err
	}
	if step.ID == "" {
		return entities.ProjectStep{}, ErrStepNotFound
	}
	if step.Status == status {
		return step, nil
	}
	step.Status = status
	step.Touch(actor, u.now())
	updated, err := u.repo.Update(ctx, step)
	if err != nil {
		return entities.ProjectStep{}, err
	}
	if updated.ID == "" {
		return entities.ProjectStep{}, ErrStepNotFound
	}
	return updated, nil
}

func (u *ProjectStepUseCase) create(ctx context.Context, actor string, step entities.ProjectStep) (entities.ProjectStep, error) {
	if step.Position == 0 {
		pos, err := u.sequencer.Next(ctx, timesheet.ProjectScope(step.ProjectID))
		if err != nil {
			return entities.ProjectStep{}, err
		}
		step.Position = pos
	}
	step.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, step)
	if err != nil {
		if errors.Is(err, interfaces.ErrPositionTaken) {
			log.Printf("[step][usecase] position conflict project_id=%s position=%d", step.ProjectID, step.Position)
			return entities.ProjectStep{}, ErrPositionConflict
		}
		return entities.ProjectStep{}, err
	}
	return created, nil
}

func (u *ProjectStepUseCase) requireProject(ctx context.Context, projectID string) (string, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", ErrInvalidProjectID
	}
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", ErrProjectNotFound
	}
	return projectID, nil
}

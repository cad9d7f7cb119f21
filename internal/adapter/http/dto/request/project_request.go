package request

import (
	"strings"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	Name                string              `json:"name" binding:"required"`
	Key                 string              `json:"key" binding:"required"`
	Description         string              `json:"description"`
	CustomerID          string              `json:"customer_id"`
	MasterID            string              `json:"master_id"`
	DepartmentID        string              `json:"department_id"`
	ManagerID           string              `json:"manager_id"`
	Status              string              `json:"status"`
	CoefficientSaturday decimal.NullDecimal `json:"coefficient_saturday"`
	CoefficientSunday   decimal.NullDecimal `json:"coefficient_sunday"`
}

// ToInput converts the payload. An empty status is left to the use case
// default.
func (r CreateProjectRequest) ToInput() (usecase.CreateProjectInput, error) {
	var status entities.ProjectStatus
	if v := strings.TrimSpace(r.Status); v != "" {
		s, err := StatusRequest{Status: v}.ProjectStatus()
		if err != nil {
			return usecase.CreateProjectInput{}, err
		}
		status = s
	}
	return usecase.CreateProjectInput{
		Name:                r.Name,
		Key:                 r.Key,
		Description:         r.Description,
		CustomerID:          r.CustomerID,
		MasterID:            r.MasterID,
		DepartmentID:        r.DepartmentID,
		ManagerID:           r.ManagerID,
		Status:              status,
		CoefficientSaturday: r.CoefficientSaturday,
		CoefficientSunday:   r.CoefficientSunday,
	}, nil
}

type CopyProjectRequest struct {
	Name      string `json:"name"`
	WithSteps bool   `json:"with_steps"`
}

func (r CopyProjectRequest) ToInput() usecase.CopyProjectInput {
	return usecase.CopyProjectInput{Name: r.Name, WithSteps: r.WithSteps}
}

type CreateStepRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	Position    int                 `json:"position"`
	Coefficient decimal.NullDecimal `json:"coefficient"`
	Duration    *int                `json:"duration"`
	FlatRate    decimal.NullDecimal `json:"flat_rate"`
	DailyRate   decimal.NullDecimal `json:"daily_rate"`
}

func (r CreateStepRequest) ToInput() (usecase.CreateStepInput, error) {
	var status entities.StepStatus
	if v := strings.TrimSpace(r.Status); v != "" {
		s, err := StatusRequest{Status: v}.StepStatus()
		if err != nil {
			return usecase.CreateStepInput{}, err
		}
		status = s
	}
	return usecase.CreateStepInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      status,
		Position:    r.Position,
		Coefficient: r.Coefficient,
		Duration:    r.Duration,
		FlatRate:    r.FlatRate,
		DailyRate:   r.DailyRate,
	}, nil
}

// DefaultStepsRequest lists the template step names to add to a project.
type DefaultStepsRequest struct {
	Names []string `json:"names" binding:"required"`
}

package response

import (
	"inhouse/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProjectResponse struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Key                 string              `json:"key"`
	Description         string              `json:"description,omitempty"`
	CustomerID          string              `json:"customer_id,omitempty"`
	Status              string              `json:"status"`
	IsOpen              bool                `json:"is_open"`
	MasterID            string              `json:"master_id"`
	IsMaster            bool                `json:"is_master"`
	DepartmentID        string              `json:"department_id,omitempty"`
	ManagerID           string              `json:"manager_id,omitempty"`
	CoefficientSaturday decimal.NullDecimal `json:"coefficient_saturday"`
	CoefficientSunday   decimal.NullDecimal `json:"coefficient_sunday"`
	AuditResponse
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Key:                 p.Key,
		Description:         p.Description,
		CustomerID:          p.CustomerID,
		Status:              p.Status.String(),
		IsOpen:              p.IsOpen(),
		MasterID:            p.MasterID,
		IsMaster:            p.IsMaster(),
		DepartmentID:        p.DepartmentID,
		ManagerID:           p.ManagerID,
		CoefficientSaturday: p.CoefficientSaturday,
		CoefficientSunday:   p.CoefficientSunday,
		AuditResponse:       fromAudit(p.Audit),
	}
}

func FromProjects(items []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProject(p))
	}
	return out
}

type StepResponse struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"project_id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Status      string              `json:"status"`
	IsOpen      bool                `json:"is_open"`
	Position    int                 `json:"position"`
	Coefficient decimal.NullDecimal `json:"coefficient"`
	Duration    *int                `json:"duration,omitempty"`
	FlatRate    decimal.NullDecimal `json:"flat_rate"`
	DailyRate   decimal.NullDecimal `json:"daily_rate"`
	AuditResponse
}

func FromStep(s entities.ProjectStep) StepResponse {
	return StepResponse{
		ID:            s.ID,
		ProjectID:     s.ProjectID,
		Name:          s.Name,
		Description:   s.Description,
		Status:        s.Status.String(),
		IsOpen:        s.IsOpen(),
		Position:      s.Position,
		Coefficient:   s.Coefficient,
		Duration:      s.Duration,
		FlatRate:      s.FlatRate,
		DailyRate:     s.DailyRate,
		AuditResponse: fromAudit(s.Audit),
	}
}

func FromSteps(items []entities.ProjectStep) []StepResponse {
	out := make([]StepResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromStep(s))
	}
	return out
}

package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a project.
//
// Projects are never deleted; they are moved to one of the inactive states.
type ProjectStatus int

const (
	ProjectStatusOpen    ProjectStatus = 1
	ProjectStatusDeleted ProjectStatus = 2
	ProjectStatusIdle    ProjectStatus = 3
	ProjectStatusClosed  ProjectStatus = 4
)

func (s ProjectStatus) Valid() bool {
	return s >= ProjectStatusOpen && s <= ProjectStatusClosed
}

func (s ProjectStatus) String() string {
	switch s {
	case ProjectStatusOpen:
		return "open"
	case ProjectStatusDeleted:
		return "deleted"
	case ProjectStatusIdle:
		return "idle"
	case ProjectStatusClosed:
		return "closed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseProjectStatus accepts the names returned by String.
func ParseProjectStatus(v string) (ProjectStatus, bool) {
	for s := ProjectStatusOpen; s <= ProjectStatusClosed; s++ {
		if s.String() == v {
			return s, true
		}
	}
	return 0, false
}

// Project is a billable unit of work for a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (key-index): key
//
// MasterID always holds a value once the project is stored: a project
// created without master references itself.
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Key          string        `json:"key"`
	Description  string        `json:"description,omitempty"`
	CustomerID   string        `json:"customer_id,omitempty"`
	Status       ProjectStatus `json:"status"`
	MasterID     string        `json:"master_id,omitempty"`
	DepartmentID string        `json:"department_id,omitempty"`
	ManagerID    string        `json:"manager_id,omitempty"`

	CoefficientSaturday decimal.NullDecimal `json:"coefficient_saturday"`
	CoefficientSunday   decimal.NullDecimal `json:"coefficient_sunday"`

	Audit
}

func (p Project) IsOpen() bool {
	return p.Status == ProjectStatusOpen
}

// IsMaster reports whether the project is its own master.
func (p Project) IsMaster() bool {
	return p.MasterID == "" || p.MasterID == p.ID
}

// CopyProject returns an unsaved project carrying the settings of src.
// Identity, description, master and audit data are not copied.
func CopyProject(src Project, key string) Project {
	return Project{
		Name:                fmt.Sprintf("Copy of '%s'", src.Name),
		Key:                 key,
		CustomerID:          src.CustomerID,
		Status:              src.Status,
		DepartmentID:        src.DepartmentID,
		ManagerID:           src.ManagerID,
		CoefficientSaturday: src.CoefficientSaturday,
		CoefficientSunday:   src.CoefficientSunday,
	}
}

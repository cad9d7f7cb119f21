package entities

import "github.com/shopspring/decimal"

type StepStatus int

const (
	StepStatusOpen   StepStatus = 1
	StepStatusClosed StepStatus = 2
)

func (s StepStatus) Valid() bool {
	return s == StepStatusOpen || s == StepStatusClosed
}

func (s StepStatus) String() string {
	if s == StepStatusOpen {
		return "open"
	}
	if s == StepStatusClosed {
		return "closed"
	}
	return "unknown"
}

func ParseStepStatus(v string) (StepStatus, bool) {
	switch v {
	case "open":
		return StepStatusOpen, true
	case "closed":
		return StepStatusClosed, true
	}
	return 0, false
}

// ProjectStep is a sub-phase of a project used to classify bookings.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (project_id-index): project_id, sorted by position
//
// Name is unique within a project, Position is unique within a project and
// assigned by the position sequencer.
type ProjectStep struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      StepStatus `json:"status"`
	Position    int        `json:"position"`

	Coefficient decimal.NullDecimal `json:"coefficient"`
	Duration    *int                `json:"duration,omitempty"`
	FlatRate    decimal.NullDecimal `json:"flat_rate"`
	DailyRate   decimal.NullDecimal `json:"daily_rate"`

	Audit
}

func (s ProjectStep) IsOpen() bool {
	return s.Status == StepStatusOpen
}

// CopyStep returns an unsaved, open step with the name and description of src.
func CopyStep(src ProjectStep) ProjectStep {
	return ProjectStep{
		Name:        src.Name,
		Description: src.Description,
		Status:      StepStatusOpen,
	}
}

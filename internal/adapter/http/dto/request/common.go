package request

import (
	"errors"
	"strings"
	"time"

	"inhouse/internal/domain/entities"
)

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStatus = errors.New("invalid status")
)

// ParseDate parses a YYYY-MM-DD value into a UTC date.
func ParseDate(v string) (time.Time, error) {
	d, err := time.Parse(entities.DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// StatusRequest changes the status of a project or a project step.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ProjectStatus() (entities.ProjectStatus, error) {
	s, ok := entities.ParseProjectStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !ok {
		return 0, ErrInvalidStatus
	}
	return s, nil
}

func (r StatusRequest) StepStatus() (entities.StepStatus, error) {
	s, ok := entities.ParseStepStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !ok {
		return 0, ErrInvalidStatus
	}
	return s, nil
}

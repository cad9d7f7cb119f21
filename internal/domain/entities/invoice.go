package entities

import (
	"strconv"
	"time"
)

// Invoice is a billing period of a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (project_id-index): project_id
//
// InternalNo is sequenced per project. No is the company's invoice number
// and may be assigned later.
type Invoice struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	No         *int      `json:"no,omitempty"`
	InternalNo int       `json:"internal_no"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`

	Audit
}

// Covers reports whether date falls into the invoice period (inclusive).
func (i Invoice) Covers(date time.Time) bool {
	return !date.Before(i.ValidFrom) && !date.After(i.ValidUntil)
}

// Label returns "<project key>-<internal no>", or the id when either part
// is missing.
func (i Invoice) Label(projectKey string) string {
	if projectKey != "" && i.InternalNo > 0 {
		return projectKey + "-" + strconv.Itoa(i.InternalNo)
	}
	return i.ID
}

package entities

import "time"

// Audit carries the bookkeeping fields shared by every persisted entity.
//
// Storage model:
//   - created_by / modified_by: user ids, empty when unknown
//   - created / modified: UTC timestamps
type Audit struct {
	CreatedBy  string    `json:"created_by,omitempty"`
	ModifiedBy string    `json:"modified_by,omitempty"`
	Created    time.Time `json:"created"`
	Modified   time.Time `json:"modified"`
}

// Touch records a save by userID at now. The creation fields are only set
// on the first save.
func (a *Audit) Touch(userID string, now time.Time) {
	if a.Created.IsZero() {
		a.Created = now
		if a.CreatedBy == "" {
			a.CreatedBy = userID
		}
	}
	a.Modified = now
	a.ModifiedBy = userID
}

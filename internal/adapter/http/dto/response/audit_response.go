package response

import (
	"time"

	"inhouse/internal/domain/entities"
)

type AuditResponse struct {
	CreatedBy  string    `json:"created_by,omitempty"`
	ModifiedBy string    `json:"modified_by,omitempty"`
	Created    time.Time `json:"created"`
	Modified   time.Time `json:"modified"`
}

func fromAudit(a entities.Audit) AuditResponse {
	return AuditResponse{
		CreatedBy:  a.CreatedBy,
		ModifiedBy: a.ModifiedBy,
		Created:    a.Created,
		Modified:   a.Modified,
	}
}

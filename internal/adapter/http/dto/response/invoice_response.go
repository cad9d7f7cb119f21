package response

import (
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
)

type InvoiceLineResponse struct {
	BookingID   string          `json:"booking_id"`
	Date        string          `json:"date"`
	Title       string          `json:"title"`
	Duration    decimal.Decimal `json:"duration"`
	Coefficient decimal.Decimal `json:"coefficient"`
	Weighted    decimal.Decimal `json:"weighted_duration"`
}

type InvoiceResponse struct {
	ID         string                `json:"id"`
	ProjectID  string                `json:"project_id"`
	Label      string                `json:"label"`
	No         *int                  `json:"no,omitempty"`
	InternalNo int                   `json:"internal_no"`
	ValidFrom  string                `json:"valid_from"`
	ValidUntil string                `json:"valid_until"`
	Lines      []InvoiceLineResponse `json:"lines"`
	Total      decimal.Decimal       `json:"total"`
	AuditResponse
}

func FromInvoiceDetails(d usecase.InvoiceDetails) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, InvoiceLineResponse{
			BookingID:   l.BookingID,
			Date:        l.Date,
			Title:       l.Title,
			Duration:    l.Duration,
			Coefficient: l.Coefficient,
			Weighted:    l.Weighted,
		})
	}
	return InvoiceResponse{
		ID:            d.Invoice.ID,
		ProjectID:     d.Invoice.ProjectID,
		Label:         d.Label,
		No:            d.Invoice.No,
		InternalNo:    d.Invoice.InternalNo,
		ValidFrom:     d.Invoice.ValidFrom.Format(entities.DateLayout),
		ValidUntil:    d.Invoice.ValidUntil.Format(entities.DateLayout),
		Lines:         lines,
		Total:         d.Total,
		AuditResponse: fromAudit(d.Invoice.Audit),
	}
}

package entities

import "github.com/shopspring/decimal"

// Booking is a recorded unit of work on a day.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (day_id-index): day_id, sorted by position
//   - GSI (project_id-index): project_id
//
// Duration is expressed in hours. FromTime/ToTime are optional "15:04"
// values. Once InvoiceID is set the booking is settled and frozen.
type Booking struct {
	ID          string `json:"id"`
	DayID       string `json:"day_id"`
	ProjectID   string `json:"project_id"`
	StepID      string `json:"step_id,omitempty"`
	InvoiceID   string `json:"invoice_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	FromTime    string `json:"from_time,omitempty"`
	ToTime      string `json:"to_time,omitempty"`
	Location    string `json:"location,omitempty"`

	Duration            decimal.Decimal     `json:"duration"`
	Coefficient         decimal.NullDecimal `json:"coefficient"`
	ExternalCoefficient decimal.NullDecimal `json:"external_coefficient"`

	Audit
}

func (b Booking) IsSettled() bool {
	return b.InvoiceID != ""
}

// DurationMinutes returns the duration in whole minutes.
func (b Booking) DurationMinutes() int {
	return int(b.Duration.Mul(decimal.NewFromInt(60)).IntPart())
}

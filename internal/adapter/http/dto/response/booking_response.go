package response

import (
	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID                  string              `json:"id"`
	DayID               string              `json:"day_id"`
	ProjectID           string              `json:"project_id"`
	StepID              string              `json:"step_id,omitempty"`
	InvoiceID           string              `json:"invoice_id,omitempty"`
	Settled             bool                `json:"settled"`
	Title               string              `json:"title"`
	Description         string              `json:"description,omitempty"`
	Position            int                 `json:"position"`
	FromTime            string              `json:"from_time,omitempty"`
	ToTime              string              `json:"to_time,omitempty"`
	Location            string              `json:"location,omitempty"`
	Duration            decimal.Decimal     `json:"duration"`
	DurationDisplay     string              `json:"duration_display"`
	Coefficient         decimal.NullDecimal `json:"coefficient"`
	ExternalCoefficient decimal.NullDecimal `json:"external_coefficient"`
	AuditResponse
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		DayID:               b.DayID,
		ProjectID:           b.ProjectID,
		StepID:              b.StepID,
		InvoiceID:           b.InvoiceID,
		Settled:             b.IsSettled(),
		Title:               b.Title,
		Description:         b.Description,
		Position:            b.Position,
		FromTime:            b.FromTime,
		ToTime:              b.ToTime,
		Location:            b.Location,
		Duration:            b.Duration,
		DurationDisplay:     timesheet.FormatHours(b.Duration),
		Coefficient:         b.Coefficient,
		ExternalCoefficient: b.ExternalCoefficient,
		AuditResponse:       fromAudit(b.Audit),
	}
}

func FromBookings(items []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBooking(b))
	}
	return out
}

// BookingDetailsResponse adds the editability and the effective billing
// multiplier to a booking.
type BookingDetailsResponse struct {
	BookingResponse
	Date             string          `json:"date"`
	UserID           string          `json:"user_id"`
	ProjectKey       string          `json:"project_key"`
	StepName         string          `json:"step_name,omitempty"`
	IsOpen           bool            `json:"is_open"`
	ClosingReasons   []string        `json:"closing_reasons"`
	BillCoefficient  decimal.Decimal `json:"bill_coefficient"`
	WeightedDuration decimal.Decimal `json:"weighted_duration"`
}

func FromBookingDetails(d usecase.BookingDetails) BookingDetailsResponse {
	res := BookingDetailsResponse{
		BookingResponse:  FromBooking(d.Booking),
		Date:             d.Day.Date.Format(entities.DateLayout),
		UserID:           d.Day.UserID,
		ProjectKey:       d.Project.Key,
		IsOpen:           d.IsOpen,
		ClosingReasons:   d.ClosingReasons,
		BillCoefficient:  d.Coefficient,
		WeightedDuration: d.Booking.Duration.Mul(d.Coefficient),
	}
	if res.ClosingReasons == nil {
		res.ClosingReasons = []string{}
	}
	if d.Step != nil {
		res.StepName = d.Step.Name
	}
	return res
}

type DaySheetResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Date         string            `json:"date"`
	Slug         string            `json:"slug"`
	Locked       bool              `json:"locked"`
	Bookings     []BookingResponse `json:"bookings"`
	TotalMinutes int               `json:"total_minutes"`
	Total        string            `json:"total"`
	OverLimit    bool              `json:"over_limit"`
}

func FromDaySheet(s usecase.DaySheet) DaySheetResponse {
	return DaySheetResponse{
		ID:           s.Day.ID,
		UserID:       s.Day.UserID,
		Date:         s.Day.Date.Format(entities.DateLayout),
		Slug:         s.Day.Slug(),
		Locked:       s.Day.Locked,
		Bookings:     FromBookings(s.Bookings),
		TotalMinutes: s.TotalMinutes,
		Total:        s.Total,
		OverLimit:    s.OverLimit,
	}
}

type DayResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Slug   string `json:"slug"`
	Locked bool   `json:"locked"`
}

func FromDay(d entities.Day) DayResponse {
	return DayResponse{
		ID:     d.ID,
		UserID: d.UserID,
		Date:   d.Date.Format(entities.DateLayout),
		Slug:   d.Slug(),
		Locked: d.Locked,
	}
}

package request

import (
	"strings"

	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest books work on a day. UserID falls back to the
// request user when empty.
type CreateBookingRequest struct {
	UserID              string              `json:"user_id"`
	Date                string              `json:"date" binding:"required"`
	ProjectID           string              `json:"project_id" binding:"required"`
	StepID              string              `json:"step_id"`
	Title               string              `json:"title" binding:"required"`
	Description         string              `json:"description"`
	Position            int                 `json:"position"`
	FromTime            string              `json:"from_time"`
	ToTime              string              `json:"to_time"`
	Location            string              `json:"location"`
	Duration            decimal.Decimal     `json:"duration"`
	Coefficient         decimal.NullDecimal `json:"coefficient"`
	ExternalCoefficient decimal.NullDecimal `json:"external_coefficient"`
}

func (r CreateBookingRequest) ToInput(actor string) (usecase.CreateBookingInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	userID := strings.TrimSpace(r.UserID)
	if userID == "" {
		userID = actor
	}
	return usecase.CreateBookingInput{
		UserID:              userID,
		Date:                date,
		ProjectID:           r.ProjectID,
		StepID:              r.StepID,
		Title:               r.Title,
		Description:         r.Description,
		Position:            r.Position,
		FromTime:            strings.TrimSpace(r.FromTime),
		ToTime:              strings.TrimSpace(r.ToTime),
		Location:            r.Location,
		Duration:            r.Duration,
		Coefficient:         r.Coefficient,
		ExternalCoefficient: r.ExternalCoefficient,
	}, nil
}

// UpdateBookingRequest is a partial update; absent fields are kept.
type UpdateBookingRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Duration    *decimal.Decimal `json:"duration"`
	FromTime    *string          `json:"from_time"`
	ToTime      *string          `json:"to_time"`
	Location    *string          `json:"location"`
}

func (r UpdateBookingRequest) ToInput() usecase.UpdateBookingInput {
	return usecase.UpdateBookingInput{
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		FromTime:    r.FromTime,
		ToTime:      r.ToTime,
		Location:    r.Location,
	}
}

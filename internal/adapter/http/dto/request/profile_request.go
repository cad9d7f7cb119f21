package request

import (
	"strings"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateProfileRequest struct {
	UserID          string                 `json:"user_id"`
	Address         entities.Address       `json:"address"`
	Communication   entities.Communication `json:"communication"`
	Language        string                 `json:"language"`
	DailyRate       decimal.Decimal        `json:"daily_rate"`
	Job             string                 `json:"job"`
	PersonnelNo     string                 `json:"personnel_no"`
	HoursPerWeek    decimal.NullDecimal    `json:"hours_per_week"`
	HolidaysPerYear decimal.NullDecimal    `json:"holidays_per_year"`
}

// ToInput converts the payload. UserID falls back to the request user.
func (r CreateProfileRequest) ToInput(actor string) usecase.CreateProfileInput {
	userID := strings.TrimSpace(r.UserID)
	if userID == "" {
		userID = actor
	}
	return usecase.CreateProfileInput{
		UserID:          userID,
		Address:         r.Address,
		Communication:   r.Communication,
		Language:        strings.TrimSpace(r.Language),
		DailyRate:       r.DailyRate,
		Job:             r.Job,
		PersonnelNo:     r.PersonnelNo,
		HoursPerWeek:    r.HoursPerWeek,
		HolidaysPerYear: r.HolidaysPerYear,
	}
}

type CreateCustomerRequest struct {
	Name1         string                  `json:"name1" binding:"required"`
	Name2         string                  `json:"name2"`
	Name3         string                  `json:"name3"`
	Address       entities.Address        `json:"address"`
	Communication *entities.Communication `json:"communication"`
	DailyRate     decimal.NullDecimal     `json:"daily_rate"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name1:         r.Name1,
		Name2:         r.Name2,
		Name3:         r.Name3,
		Address:       r.Address,
		Communication: r.Communication,
		DailyRate:     r.DailyRate,
	}
}

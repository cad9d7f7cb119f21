package response

import (
	"inhouse/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const addressSeparator = ", "

type ProfileResponse struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	Address          entities.Address       `json:"address"`
	FormattedAddress string                 `json:"formatted_address"`
	Communication    entities.Communication `json:"communication"`
	Language         string                 `json:"language"`
	DailyRate        decimal.Decimal        `json:"daily_rate"`
	Job              string                 `json:"job,omitempty"`
	PersonnelNo      string                 `json:"personnel_no,omitempty"`
	HoursPerWeek     decimal.NullDecimal    `json:"hours_per_week"`
	HolidaysPerYear  decimal.NullDecimal    `json:"holidays_per_year"`
	AuditResponse
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Address:          p.Address,
		FormattedAddress: p.Address.String(addressSeparator),
		Communication:    p.Communication,
		Language:         p.Language,
		DailyRate:        p.DailyRate,
		Job:              p.Job,
		PersonnelNo:      p.PersonnelNo,
		HoursPerWeek:     p.HoursPerWeek,
		HolidaysPerYear:  p.HolidaysPerYear,
		AuditResponse:    fromAudit(p.Audit),
	}
}

type CustomerResponse struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	Name1                  string                  `json:"name1"`
	Name2                  string                  `json:"name2,omitempty"`
	Name3                  string                  `json:"name3,omitempty"`
	Address                entities.Address        `json:"address"`
	FormattedAddress       string                  `json:"formatted_address"`
	Communication          *entities.Communication `json:"communication,omitempty"`
	FormattedCommunication string                  `json:"formatted_communication,omitempty"`
	DailyRate              decimal.NullDecimal     `json:"daily_rate"`
	AuditResponse
}

func FromCustomer(c entities.Customer) CustomerResponse {
	res := CustomerResponse{
		ID:               c.ID,
		Name:             c.JoinName(" "),
		Name1:            c.Name1,
		Name2:            c.Name2,
		Name3:            c.Name3,
		Address:          c.Address,
		FormattedAddress: c.Address.String(addressSeparator),
		Communication:    c.Communication,
		DailyRate:        c.DailyRate,
		AuditResponse:    fromAudit(c.Audit),
	}
	if c.Communication != nil {
		res.FormattedCommunication = c.Communication.String(addressSeparator)
	}
	return res
}

type StarResponse struct {
	Kind     string `json:"kind"`
	ObjectID string `json:"object_id"`
	Starred  bool   `json:"starred"`
}

type StarListResponse struct {
	Kind      string   `json:"kind"`
	ObjectIDs []string `json:"object_ids"`
}

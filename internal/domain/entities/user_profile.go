package entities

import "github.com/shopspring/decimal"

// UserProfile holds the personal data of a user. There is at most one
// profile per user.
//
// Storage model (DynamoDB):
//   - PK: user_id
type UserProfile struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Address         Address             `json:"address"`
	Communication   Communication       `json:"communication"`
	Language        string              `json:"language"`
	DailyRate       decimal.Decimal     `json:"daily_rate"`
	Job             string              `json:"job,omitempty"`
	PersonnelNo     string              `json:"personnel_no,omitempty"`
	HoursPerWeek    decimal.NullDecimal `json:"hours_per_week"`
	HolidaysPerYear decimal.NullDecimal `json:"holidays_per_year"`

	Audit
}

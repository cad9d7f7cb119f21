package entities

import "time"

const DateLayout = "2006-01-02"

// Day aggregates the bookings of one user on one calendar date.
//
// Storage model (DynamoDB):
//   - PK: id, derived from (user_id, date) so that a user has at most one
//     day per date.
//
// Locking is one-way: a locked day never accepts new or edited bookings.
type Day struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Date   time.Time `json:"date"`
	Locked bool      `json:"locked"`

	Audit
}

// DayID returns the storage id of the day of userID on date.
func DayID(userID string, date time.Time) string {
	return userID + "#" + date.Format(DateLayout)
}

// NewDay returns an unlocked day for userID truncated to the calendar date.
func NewDay(userID string, date time.Time) Day {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return Day{ID: DayID(userID, d), UserID: userID, Date: d}
}

// Slug returns the date as YYYY/MM/DD.
func (d Day) Slug() string {
	return d.Date.Format("2006/01/02")
}

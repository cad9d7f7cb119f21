package response

import (
	"time"

	"inhouse/internal/usecase"
)

type TimerResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title"`
	Active         bool       `json:"active"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	Duration       int64      `json:"duration"`
	Elapsed        int64      `json:"elapsed"`
	ElapsedDisplay string     `json:"elapsed_display"`
	Hours          int64      `json:"hours"`
	Minutes        int64      `json:"minutes"`
}

func FromTimerStatus(s usecase.TimerStatus) TimerResponse {
	return TimerResponse{
		ID:             s.Timer.ID,
		UserID:         s.Timer.UserID,
		Title:          s.Timer.Title,
		Active:         s.Timer.Active,
		StartTime:      s.Timer.StartTime,
		Duration:       s.Timer.Duration,
		Elapsed:        s.Elapsed,
		ElapsedDisplay: s.ElapsedDisplay,
		Hours:          s.Hours,
		Minutes:        s.Minutes,
	}
}

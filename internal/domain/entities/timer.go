package entities

import "time"

// Timer tracks ad-hoc working time of a user.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Duration holds the accumulated seconds of all finished runs. A running
// timer has Active set and StartTime pointing at the start of the current run.
type Timer struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	StartTime *time.Time `json:"start_time,omitempty"`
	Duration  int64      `json:"duration"`
	Active    bool       `json:"active"`

	Audit
}

// Clear resets the timer regardless of its state.
func (t *Timer) Clear() {
	t.Active = false
	t.Duration = 0
}

// Start begins a new run at now. An empty title keeps the current one.
func (t *Timer) Start(now time.Time, title string) {
	if title != "" {
		t.Title = title
	}
	start := now
	t.StartTime = &start
	t.Active = true
}

// Stop ends the current run at now and adds its whole seconds to Duration.
// Stopping a timer that was never started resets Duration to 0. StartTime is
// kept, so stopping an idle timer counts from the last start again.
func (t *Timer) Stop(now time.Time) {
	t.Active = false
	if t.StartTime == nil {
		t.Duration = 0
		return
	}
	t.Duration += wholeSeconds(now.Sub(*t.StartTime))
}

// ElapsedTime returns the elapsed seconds at now, including the running
// part of an active timer.
func (t Timer) ElapsedTime(now time.Time) int64 {
	var live int64
	if t.Active && t.StartTime != nil {
		live = wholeSeconds(now.Sub(*t.StartTime))
	}
	if t.Duration > 0 {
		return t.Duration + live
	}
	return live
}

// TimeTuple splits Duration into hours and minutes rounded to a quarter
// hour. Anything up to 15 minutes counts as 15 minutes.
func (t Timer) TimeTuple() (hours, minutes int64) {
	total := t.Duration / 60
	if total <= 15 {
		return 0, 15
	}
	hours = total / 60
	rest := total - hours*60
	scrap := rest % 15
	minutes = rest / 15 * 15
	// 7.5 minute threshold on whole minutes
	if scrap*2 >= 15 {
		minutes += 15
	}
	if minutes >= 60 {
		hours += minutes / 60
		minutes %= 60
	}
	return hours, minutes
}

func wholeSeconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

package timesheet

import "inhouse/internal/domain/entities"

const (
	ReasonDayLocked       = "The day is locked."
	ReasonProjectInactive = "The project is closed or inactive."
	ReasonStepClosed      = "The projectstep is closed."
	ReasonSettled         = "The booking has been settled."
)

// BookingGraph is a booking together with the records its editability
// depends on. Step is nil for bookings without step.
type BookingGraph struct {
	Booking entities.Booking
	Day     entities.Day
	Project entities.Project
	Step    *entities.ProjectStep
}

// IsOpen reports whether the booking may still be edited.
func IsOpen(g BookingGraph) bool {
	return len(ClosingReasons(g)) == 0
}

// ClosingReasons lists every reason that keeps the booking closed, in the
// order day, project, step, invoice. An open booking has no reasons.
func ClosingReasons(g BookingGraph) []string {
	var reasons []string
	if g.Day.Locked {
		reasons = append(reasons, ReasonDayLocked)
	}
	if !g.Project.IsOpen() {
		reasons = append(reasons, ReasonProjectInactive)
	}
	if g.Step != nil && !g.Step.IsOpen() {
		reasons = append(reasons, ReasonStepClosed)
	}
	if g.Booking.IsSettled() {
		reasons = append(reasons, ReasonSettled)
	}
	return reasons
}

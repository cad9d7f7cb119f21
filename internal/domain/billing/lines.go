package billing

import (
	"github.com/shopspring/decimal"

	"inhouse/internal/domain/entities"
)

// Item is a settled booking with the records needed to price it.
type Item struct {
	Booking entities.Booking
	Day     entities.Day
	Step    *entities.ProjectStep
}

// Line is one priced row of an invoice.
type Line struct {
	BookingID   string
	Date        string
	Title       string
	Duration    decimal.Decimal
	Coefficient decimal.Decimal
	Weighted    decimal.Decimal
}

// BuildLines prices every item of project and returns the lines together
// with the sum of the weighted durations.
func (r *CoefficientResolver) BuildLines(project entities.Project, items []Item) ([]Line, decimal.Decimal) {
	lines := make([]Line, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		day := it.Day
		co := r.Resolve(project, it.Step, &day)
		weighted := it.Booking.Duration.Mul(co)
		lines = append(lines, Line{
			BookingID:   it.Booking.ID,
			Date:        it.Day.Date.Format(entities.DateLayout),
			Title:       it.Booking.Title,
			Duration:    it.Booking.Duration,
			Coefficient: co,
			Weighted:    weighted,
		})
		total = total.Add(weighted)
	}
	return lines, total
}

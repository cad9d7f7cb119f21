package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"inhouse/internal/domain/entities"
)

var one = decimal.NewFromInt(1)

// CoefficientResolver computes the billing multiplier of a booking from the
// weekday of its day and the coefficient of its step.
type CoefficientResolver struct {
	defaultSaturday decimal.Decimal
	defaultSunday   decimal.Decimal
}

// NewCoefficientResolver uses saturday and sunday when a project does not
// carry its own weekend coefficients.
func NewCoefficientResolver(saturday, sunday decimal.Decimal) *CoefficientResolver {
	return &CoefficientResolver{defaultSaturday: saturday, defaultSunday: sunday}
}

// Resolve returns weekend coefficient × step coefficient. Step and day are
// optional; a missing or zero coefficient counts as unset.
func (r *CoefficientResolver) Resolve(project entities.Project, step *entities.ProjectStep, day *entities.Day) decimal.Decimal {
	x := one
	if day != nil {
		switch day.Date.Weekday() {
		case time.Saturday:
			x = orDefault(project.CoefficientSaturday, r.defaultSaturday)
		case time.Sunday:
			x = orDefault(project.CoefficientSunday, r.defaultSunday)
		}
	}
	y := one
	if step != nil && isSet(step.Coefficient) {
		y = step.Coefficient.Decimal
	}
	return x.Mul(y)
}

func isSet(v decimal.NullDecimal) bool {
	return v.Valid && !v.Decimal.IsZero()
}

func orDefault(v decimal.NullDecimal, def decimal.Decimal) decimal.Decimal {
	if isSet(v) {
		return v.Decimal
	}
	return def
}

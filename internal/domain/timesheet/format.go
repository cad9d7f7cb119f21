package timesheet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMinutes renders a minute count as HH:MM. Zero and negative values
// render as the empty string.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatHours renders a decimal hour value as HH:MM, truncating seconds.
func FormatHours(hours decimal.Decimal) string {
	return FormatMinutes(int(hours.Mul(decimal.NewFromInt(60)).IntPart()))
}

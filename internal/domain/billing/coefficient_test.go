package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"inhouse/internal/domain/entities"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func nullDec(v string) decimal.NullDecimal { return decimal.NewNullDecimal(dec(v)) }

func dayOn(weekday time.Weekday) *entities.Day {
	// 2024-01-01 is a Monday
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return &entities.Day{Date: d}
}

func TestCoefficientResolver_Resolve(t *testing.T) {
	r := NewCoefficientResolver(dec("1.25"), dec("2"))

	cases := []struct {
		name    string
		project entities.Project
		step    *entities.ProjectStep
		day     *entities.Day
		want    string
	}{
		{name: "no day no step", want: "1"},
		{name: "weekday", day: dayOn(time.Wednesday), project: entities.Project{CoefficientSaturday: nullDec("3")}, want: "1"},
		{name: "saturday project value", day: dayOn(time.Saturday), project: entities.Project{CoefficientSaturday: nullDec("1.5")}, want: "1.5"},
		{name: "saturday default", day: dayOn(time.Saturday), want: "1.25"},
		{name: "saturday zero falls back", day: dayOn(time.Saturday), project: entities.Project{CoefficientSaturday: nullDec("0")}, want: "1.25"},
		{name: "sunday project value", day: dayOn(time.Sunday), project: entities.Project{CoefficientSunday: nullDec("1.75")}, want: "1.75"},
		{name: "sunday default", day: dayOn(time.Sunday), want: "2"},
		{name: "step on weekday", day: dayOn(time.Monday), step: &entities.ProjectStep{Coefficient: nullDec("2")}, want: "2"},
		{name: "step without coefficient", step: &entities.ProjectStep{}, want: "1"},
		{name: "step and sunday", day: dayOn(time.Sunday), step: &entities.ProjectStep{Coefficient: nullDec("0.5")}, want: "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(tc.project, tc.step, tc.day)
			if !got.Equal(dec(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCoefficientResolver_BuildLines(t *testing.T) {
	r := NewCoefficientResolver(dec("1.5"), dec("2"))
	project := entities.Project{Key: "P"}
	items := []Item{
		{Booking: entities.Booking{ID: "b1", Duration: dec("2")}, Day: *dayOn(time.Monday)},
		{Booking: entities.Booking{ID: "b2", Duration: dec("4")}, Day: *dayOn(time.Saturday)},
		{Booking: entities.Booking{ID: "b3", Duration: dec("1")}, Day: *dayOn(time.Tuesday), Step: &entities.ProjectStep{Coefficient: nullDec("3")}},
	}

	lines, total := r.BuildLines(project, items)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !lines[1].Coefficient.Equal(dec("1.5")) || !lines[1].Weighted.Equal(dec("6")) {
		t.Fatalf("unexpected saturday line %+v", lines[1])
	}
	if lines[0].Date != "2024-01-01" {
		t.Fatalf("unexpected date %q", lines[0].Date)
	}
	if !total.Equal(dec("11")) {
		t.Fatalf("expected total 11, got %s", total)
	}
}

package timesheet

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"inhouse/internal/domain/entities"
)

func TestFormatMinutes(t *testing.T) {
	for _, m := range []int{1, 59, 60, 61, 125, 600, 1439, 6000} {
		want := fmt.Sprintf("%02d:%02d", m/60, m%60)
		if got := FormatMinutes(m); got != want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", m, got, want)
		}
	}
	if got := FormatMinutes(0); got != "" {
		t.Fatalf("expected empty string for zero, got %q", got)
	}
	if got := FormatHours(decimal.RequireFromString("1.5")); got != "01:30" {
		t.Fatalf("unexpected hours format %q", got)
	}
	if got := FormatHours(decimal.Zero); got != "" {
		t.Fatalf("expected empty string for zero hours, got %q", got)
	}
}

func TestNextPosition(t *testing.T) {
	if got := NextPosition(); got != 1 {
		t.Fatalf("expected 1 for empty scope, got %d", got)
	}
	if got := NextPosition(1, 3, 5); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := NextPosition(5, 1, 3); got != 6 {
		t.Fatalf("expected 6 for unordered input, got %d", got)
	}
}

type memorySource map[string][]int

func (m memorySource) MaxPosition(_ context.Context, scope string) (int, error) {
	max := 0
	for _, p := range m[scope] {
		if p > max {
			max = p
		}
	}
	return max, nil
}

type failingSource struct{}

func (failingSource) MaxPosition(context.Context, string) (int, error) {
	return 0, errors.New("db")
}

func TestSequencer_Next(t *testing.T) {
	src := memorySource{}
	seq := NewSequencer(src)
	scope := DayScope("u1#2024-01-01")

	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		p, err := seq.Next(context.Background(), scope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[p] {
			t.Fatalf("duplicate position %d", p)
		}
		seen[p] = true
		src[scope] = append(src[scope], p)
	}
	if p, _ := seq.Next(context.Background(), ProjectScope("p1")); p != 1 {
		t.Fatalf("expected independent scope to start at 1, got %d", p)
	}

	_, err := NewSequencer(failingSource{}).Next(context.Background(), scope)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func graph() BookingGraph {
	return BookingGraph{
		Booking: entities.Booking{ID: "b1"},
		Day:     entities.Day{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Project: entities.Project{Status: entities.ProjectStatusOpen},
		Step:    &entities.ProjectStep{Status: entities.StepStatusOpen},
	}
}

func TestClosure(t *testing.T) {
	t.Run("open booking", func(t *testing.T) {
		g := graph()
		if !IsOpen(g) || len(ClosingReasons(g)) != 0 {
			t.Fatalf("expected open booking")
		}
		g.Step = nil
		if !IsOpen(g) {
			t.Fatalf("expected booking without step to be open")
		}
	})

	t.Run("settled", func(t *testing.T) {
		g := graph()
		g.Booking.InvoiceID = "inv-1"
		if IsOpen(g) {
			t.Fatalf("expected settled booking to be closed")
		}
		reasons := ClosingReasons(g)
		if len(reasons) != 1 || reasons[0] != ReasonSettled {
			t.Fatalf("unexpected reasons %v", reasons)
		}
	})

	t.Run("day locked and project closed", func(t *testing.T) {
		g := graph()
		g.Day.Locked = true
		g.Project.Status = entities.ProjectStatusClosed
		reasons := ClosingReasons(g)
		if len(reasons) != 2 || reasons[0] != ReasonDayLocked || reasons[1] != ReasonProjectInactive {
			t.Fatalf("unexpected reasons %v", reasons)
		}
	})

	t.Run("all reasons in order", func(t *testing.T) {
		g := graph()
		g.Day.Locked = true
		g.Project.Status = entities.ProjectStatusIdle
		g.Step.Status = entities.StepStatusClosed
		g.Booking.InvoiceID = "inv-1"
		want := []string{ReasonDayLocked, ReasonProjectInactive, ReasonStepClosed, ReasonSettled}
		got := ClosingReasons(g)
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})
}

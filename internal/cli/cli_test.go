package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inhouse/internal/adapter/http/handlers/mocks"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func runRoot(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(context.Background(), deps)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestMinutesCommand(t *testing.T) {
	out, err := runRoot(t, Deps{}, "minutes", "125")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.TrimSpace(out) != "02:05" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := runRoot(t, Deps{}, "minutes", "abc"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSanityCommand(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sanity := mocks.NewMockISanityUseCase(ctrl)
		sanity.EXPECT().Check(gomock.Any()).Return(nil, nil)

		out, err := runRoot(t, Deps{Sanity: sanity}, "sanity")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(out, "no problems found") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("findings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sanity := mocks.NewMockISanityUseCase(ctrl)
		sanity.EXPECT().Check(gomock.Any()).Return([]usecase.Finding{
			{Scope: "day#u1#2024-01-06", RecordID: "b2", Position: 1, Problem: usecase.ProblemDuplicatePosition},
		}, nil)

		out, err := runRoot(t, Deps{Sanity: sanity}, "sanity")
		if !errors.Is(err, ErrInconsistentPositions) {
			t.Fatalf("expected ErrInconsistentPositions, got %v", err)
		}
		if !strings.Contains(out, "record=b2 position=1: duplicate position") {
			t.Fatalf("unexpected output %q", out)
		}
	})
}

func TestTimerCommand(t *testing.T) {
	t.Run("start uses user flag and title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		timers := mocks.NewMockITimerUseCase(ctrl)
		timers.EXPECT().Start(gomock.Any(), "u1", "t1", "Support").Return(usecase.TimerStatus{
			Timer:   entities.Timer{ID: "t1", Title: "Support", Active: true},
			Minutes: 15,
		}, nil)

		out, err := runRoot(t, Deps{Timers: timers}, "--user", "u1", "timer", "start", "t1", "--title", "Support")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(out, "t1 [running] Support elapsed=00:00 booked=0:15") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("show", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		timers := mocks.NewMockITimerUseCase(ctrl)
		timers.EXPECT().Get(gomock.Any(), "t1").Return(usecase.TimerStatus{
			Timer:          entities.Timer{ID: "t1", Title: "Support", Duration: 4380},
			Elapsed:        4380,
			ElapsedDisplay: "01:13",
			Hours:          1,
			Minutes:        15,
		}, nil)

		out, err := runRoot(t, Deps{Timers: timers}, "timer", "show", "t1")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(out, "t1 [stopped] Support elapsed=01:13 booked=1:15") {
			t.Fatalf("unexpected output %q", out)
		}
	})

	t.Run("unknown timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		timers := mocks.NewMockITimerUseCase(ctrl)
		timers.EXPECT().Stop(gomock.Any(), "", "t9").Return(usecase.TimerStatus{}, usecase.ErrTimerNotFound)

		t.Setenv("INHOUSE_USER", "")
		_, err := runRoot(t, Deps{Timers: timers}, "timer", "stop", "t9")
		if !errors.Is(err, usecase.ErrTimerNotFound) {
			t.Fatalf("expected ErrTimerNotFound, got %v", err)
		}
	})
}

func TestDayCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	days := mocks.NewMockIDayUseCase(ctrl)

	date := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	day := entities.NewDay("u1", date)
	day.Locked = true
	days.EXPECT().GetSheet(gomock.Any(), "u1", date).Return(usecase.DaySheet{
		Day: day,
		Bookings: []entities.Booking{
			{ID: "b1", Position: 1, Title: "Design", Duration: decimal.RequireFromString("1.5")},
			{ID: "b2", Position: 2, Title: "Review", Duration: decimal.RequireFromString("0.25")},
		},
		TotalMinutes: 105,
		Total:        "01:45",
	}, nil)

	out, err := runRoot(t, Deps{Days: days}, "day", "u1", "--date", "2024-01-06")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"2024/01/06 (locked)", "  1. 01:30 Design", "  2. 00:15 Review", "total 01:45"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %q", want, out)
		}
	}
}

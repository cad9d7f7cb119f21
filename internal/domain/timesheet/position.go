package timesheet

import (
	"context"
	"fmt"
)

// Position scopes. A scope groups the positions that must be unique.
func DayScope(dayID string) string         { return "day#" + dayID }
func ProjectScope(projectID string) string { return "project#" + projectID }
func InvoiceScope(projectID string) string { return "invoice#" + projectID }

// NextPosition returns max(positions)+1, or 1 when there are none.
func NextPosition(positions ...int) int {
	max := 0
	for _, p := range positions {
		if p > max {
			max = p
		}
	}
	return max + 1
}

// PositionSource reports the highest position ever handed out in a scope,
// 0 for an empty scope.
type PositionSource interface {
	MaxPosition(ctx context.Context, scope string) (int, error)
}

// Sequencer assigns increasing positions per scope. It assumes the caller
// claims the returned position with a conditional write; two concurrent
// callers may receive the same value and only one of them wins the claim.
type Sequencer struct {
	source PositionSource
}

func NewSequencer(source PositionSource) *Sequencer {
	return &Sequencer{source: source}
}

func (s *Sequencer) Next(ctx context.Context, scope string) (int, error) {
	max, err := s.source.MaxPosition(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("max position of %s: %w", scope, err)
	}
	return NextPosition(max), nil
}

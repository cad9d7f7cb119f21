package interfaces

import "context"

// IPositionRepository keeps track of the positions handed out per scope.
//
// A claimed position stays claimed after the owning record is deleted, so
// positions are never reused within a scope.
type IPositionRepository interface {
	MaxPosition(ctx context.Context, scope string) (int, error)
	ListClaims(ctx context.Context, scope string) ([]int, error)
}

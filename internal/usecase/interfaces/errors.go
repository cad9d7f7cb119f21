package interfaces

import "errors"

// Errors returned by repository implementations for failed conditional
// writes. Use cases translate them into their own errors.
var (
	ErrPositionTaken  = errors.New("position already taken")
	ErrAlreadyExists  = errors.New("item already exists")
	ErrAlreadySettled = errors.New("booking already settled")
	ErrKeyTaken       = errors.New("key already taken")
	ErrNameTaken      = errors.New("name already taken")
)

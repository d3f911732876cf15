package core

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidPlacement   = errors.New("invalid placement")
	ErrAlreadyShot        = errors.New("cell already shot")
	ErrInvalidShipLength  = errors.New("invalid ship length")

	// Placement failure reasons. They are always wrapped together with
	// ErrInvalidPlacement so callers can match either one.
	ErrOutOfBounds = errors.New("ship does not fit on the board")
	ErrOverlap     = errors.New("ship overlaps another ship")
	ErrAdjacent    = errors.New("ship touches another ship")
)

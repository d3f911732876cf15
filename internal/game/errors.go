package game

import (
	"errors"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/game/fleet"
)

var (
	ErrNoShipSelected = errors.New("no ship size selected")
	ErrWrongPhase     = errors.New("command not allowed in the current phase")
	ErrNoTargets      = errors.New("no unshot cells left to target")
)

// resultFor maps a command error onto the Result reported to the caller.
func resultFor(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrWrongPhase):
		return ResultWrongPhase
	case errors.Is(err, ErrNoShipSelected):
		return ResultNoShipSelected
	case errors.Is(err, fleet.ErrNoShipsRemaining):
		return ResultNoShipsRemaining
	case errors.Is(err, fleet.ErrPlacementExhausted):
		return ResultPlacementExhausted
	case errors.Is(err, core.ErrInvalidPlacement):
		return ResultInvalidPlacement
	case errors.Is(err, core.ErrAlreadyShot):
		return ResultAlreadyShot
	case errors.Is(err, core.ErrInvalidCoordinates):
		return ResultInvalidCoordinates
	default:
		return ResultError
	}
}

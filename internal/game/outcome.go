package game

import (
	"fmt"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// Result classifies the outcome of a session command
type Result int

const (
	ResultOK Result = iota
	ResultWrongPhase
	ResultNoShipSelected
	ResultNoShipsRemaining
	ResultInvalidPlacement
	ResultPlacementExhausted
	ResultAlreadyShot
	ResultInvalidCoordinates
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "OK"
	case ResultWrongPhase:
		return "WrongPhase"
	case ResultNoShipSelected:
		return "NoShipSelected"
	case ResultNoShipsRemaining:
		return "NoShipsRemaining"
	case ResultInvalidPlacement:
		return "InvalidPlacement"
	case ResultPlacementExhausted:
		return "PlacementExhausted"
	case ResultAlreadyShot:
		return "AlreadyShot"
	case ResultInvalidCoordinates:
		return "InvalidCoordinates"
	case ResultError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Accepted reports whether the command changed session state.
func (r Result) Accepted() bool {
	return r == ResultOK
}

// ShotReport describes one shot fired during a turn
type ShotReport struct {
	Shooter core.Side
	Target  core.Coordinate
	Result  core.ShotResult
}

func (s ShotReport) String() string {
	return fmt.Sprintf("%s fired at %s: %s", s.Shooter, s.Target.Label(), s.Result)
}

// Outcome is returned by every session command. Status is a short
// human-readable message suitable for a status line.
type Outcome struct {
	Result Result
	Status string

	// Shots fired this turn, human first. Only set by ShootAt.
	Shots []ShotReport

	// Winner is set when the command ended the round
	Winner core.Side
}

// GameOver reports whether this outcome ended the round.
func (o Outcome) GameOver() bool {
	return o.Winner != core.SideNone
}

func rejected(err error) Outcome {
	return Outcome{Result: resultFor(err), Status: err.Error()}
}

package core

import "fmt"

// CellState is the content of a single board cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellShip
	CellMiss // shot, nothing there
	CellHit  // shot, ship segment destroyed
)

func (s CellState) IsShot() bool { return s == CellMiss || s == CellHit }

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellMiss:
		return "Miss"
	case CellHit:
		return "Hit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ShotResult is what a shot reports back to the shooter.
type ShotResult int

const (
	ShotMiss ShotResult = iota
	ShotHit
)

func (r ShotResult) String() string {
	if r == ShotHit {
		return "Hit"
	}
	return "Miss"
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SideHuman
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "Human"
	case SideComputer:
		return "Computer"
	default:
		return "None"
	}
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideHuman:
		return SideComputer
	case SideComputer:
		return SideHuman
	default:
		return SideNone
	}
}

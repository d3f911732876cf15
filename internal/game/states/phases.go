package states

import "fmt"

// GamePhase represents the current phase of a round
type GamePhase int

const (
	// PhasePlacing - the human lays out the fleet
	PhasePlacing GamePhase = iota

	// PhaseActive - shots are being exchanged
	PhaseActive

	// PhaseOver - one fleet is sunk; only a restart is accepted
	PhaseOver
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhasePlacing:
		return "Placing"
	case PhaseActive:
		return "Active"
	case PhaseOver:
		return "Over"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseOver
}

// CanPlaceShips returns true if fleet placement commands are accepted
func (p GamePhase) CanPlaceShips() bool {
	return p == PhasePlacing
}

// CanShoot returns true if shots are accepted in this phase
func (p GamePhase) CanShoot() bool {
	return p == PhaseActive
}

// AllowedTransitions returns the valid phases this phase can transition to.
// Leaving PhaseOver is only possible through StateMachine.Reset.
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhasePlacing:
		return []GamePhase{PhaseActive}
	case PhaseActive:
		return []GamePhase{PhaseOver}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

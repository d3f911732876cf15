package events

import (
	"time"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// Event type constants
const (
	TypeRoundStarted    = "round.started"
	TypeShipPlaced      = "ship.placed"
	TypeFleetPlaced     = "fleet.placed"
	TypeBattleStarted   = "battle.started"
	TypeShotFired       = "shot.fired"
	TypeActionRejected  = "action.rejected"
	TypeGameEnded       = "game.ended"
	TypeStateTransition = "state.transition"
)

// RoundStartedEvent is published when fresh boards are dealt
type RoundStartedEvent struct {
	BaseEvent
	Round     int
	BoardSize int
	Ships     int
}

func NewRoundStartedEvent(gameID string, round, boardSize, ships int) *RoundStartedEvent {
	return &RoundStartedEvent{
		BaseEvent: newBase(TypeRoundStarted, gameID),
		Round:     round,
		BoardSize: boardSize,
		Ships:     ships,
	}
}

// ShipPlacedEvent is published for each ship the human places by hand
type ShipPlacedEvent struct {
	BaseEvent
	Side      core.Side
	Placement core.Placement
	Remaining int
}

func NewShipPlacedEvent(gameID string, side core.Side, p core.Placement, remaining int) *ShipPlacedEvent {
	return &ShipPlacedEvent{
		BaseEvent: newBase(TypeShipPlaced, gameID),
		Side:      side,
		Placement: p,
		Remaining: remaining,
	}
}

// FleetPlacedEvent is published when a fleet was laid out at random
type FleetPlacedEvent struct {
	BaseEvent
	Side  core.Side
	Ships int
	Cells int
}

func NewFleetPlacedEvent(gameID string, side core.Side, ships, cells int) *FleetPlacedEvent {
	return &FleetPlacedEvent{
		BaseEvent: newBase(TypeFleetPlaced, gameID),
		Side:      side,
		Ships:     ships,
		Cells:     cells,
	}
}

// BattleStartedEvent is published when the player confirms the fleet
type BattleStartedEvent struct {
	BaseEvent
}

func NewBattleStartedEvent(gameID string) *BattleStartedEvent {
	return &BattleStartedEvent{BaseEvent: newBase(TypeBattleStarted, gameID)}
}

// ShotFiredEvent is published for every accepted shot, from either side
type ShotFiredEvent struct {
	BaseEvent
	Shooter core.Side
	Target  core.Coordinate
	Result  core.ShotResult
	ShotNo  int
}

func NewShotFiredEvent(gameID string, shooter core.Side, target core.Coordinate, result core.ShotResult, shotNo int) *ShotFiredEvent {
	return &ShotFiredEvent{
		BaseEvent: newBase(TypeShotFired, gameID),
		Shooter:   shooter,
		Target:    target,
		Result:    result,
		ShotNo:    shotNo,
	}
}

// ActionRejectedEvent is published when a command is refused
type ActionRejectedEvent struct {
	BaseEvent
	Action string
	Reason string
}

func NewActionRejectedEvent(gameID, action, reason string) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: newBase(TypeActionRejected, gameID),
		Action:    action,
		Reason:    reason,
	}
}

// GameEndedEvent is published once per round, when a fleet is sunk
type GameEndedEvent struct {
	BaseEvent
	Winner        core.Side
	Duration      time.Duration
	HumanShots    int
	ComputerShots int
	HumanWins     int
	ComputerWins  int
}

func NewGameEndedEvent(gameID string, winner core.Side, duration time.Duration, humanShots, computerShots, humanWins, computerWins int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:     newBase(TypeGameEnded, gameID),
		Winner:        winner,
		Duration:      duration,
		HumanShots:    humanShots,
		ComputerShots: computerShots,
		HumanWins:     humanWins,
		ComputerWins:  computerWins,
	}
}

// StateTransitionEvent is published by the state machine on every phase change
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

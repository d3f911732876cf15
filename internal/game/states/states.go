package states

import (
	"fmt"
	"time"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// PlacingState represents fleet placement
type PlacingState struct{}

func NewPlacingState() State {
	return &PlacingState{}
}

func (s *PlacingState) Phase() GamePhase {
	return PhasePlacing
}

func (s *PlacingState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Waiting for fleet placement")
	return nil
}

func (s *PlacingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Fleet placement complete")
	return nil
}

func (s *PlacingState) Validate(ctx *GameContext) error {
	return nil
}

// ActiveState represents the exchange of shots
type ActiveState struct{}

func NewActiveState() State {
	return &ActiveState{}
}

func (s *ActiveState) Phase() GamePhase {
	return PhaseActive
}

func (s *ActiveState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Battle started")
	return nil
}

func (s *ActiveState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting active state")
	return nil
}

func (s *ActiveState) Validate(ctx *GameContext) error {
	if !ctx.FleetReady {
		return fmt.Errorf("fleet is not fully placed")
	}
	return nil
}

// OverState represents a finished round
type OverState struct{}

func NewOverState() State {
	return &OverState{}
}

func (s *OverState) Phase() GamePhase {
	return PhaseOver
}

func (s *OverState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Str("winner", ctx.Winner.String()).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game over")
	return nil
}

func (s *OverState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Leaving finished round")
	return nil
}

func (s *OverState) Validate(ctx *GameContext) error {
	if ctx.Winner == core.SideNone {
		return fmt.Errorf("over state requires a winner")
	}
	return nil
}

package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// Fleet is anything that can report whether unsunk ship cells remain.
// *core.Board satisfies it.
type Fleet interface {
	HasSurvivingShips() bool
}

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckAfterShot reports whether the shooter has just won by eliminating the
// target's fleet. Returns (isGameOver, winner).
func (wc *WinConditionChecker) CheckAfterShot(shooter core.Side, target Fleet) (bool, core.Side) {
	if target.HasSurvivingShips() {
		wc.logger.Debug().Str("shooter", shooter.String()).Msg("Target fleet still afloat")
		return false, core.SideNone
	}

	wc.logger.Info().Str("winner", shooter.String()).Msg("Winner determined")
	return true, shooter
}

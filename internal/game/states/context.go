package states

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// GameContext provides round-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this round
	GameID string

	// Logger for state-specific logging, tagged with the game ID
	Logger zerolog.Logger

	// Round counts rounds played in this session, starting at 1
	Round int

	// FleetReady is set once every human ship has been placed
	FleetReady bool

	// StartTime is when PhaseActive was entered
	StartTime time.Time

	// EndTime is when PhaseOver was entered
	EndTime time.Time

	// Winner is set before entering PhaseOver
	Winner core.Side

	baseLogger zerolog.Logger
}

// NewGameContext creates a new game context for the first round
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	gc := &GameContext{baseLogger: logger}
	gc.reset(gameID, 1)
	return gc
}

func (gc *GameContext) reset(gameID string, round int) {
	gc.GameID = gameID
	gc.Round = round
	gc.Logger = gc.baseLogger.With().Str("game_id", gameID).Int("round", round).Logger()
	gc.FleetReady = false
	gc.StartTime = time.Time{}
	gc.EndTime = time.Time{}
	gc.Winner = core.SideNone
}

// GetElapsedTime returns how long the battle has been running, or how long
// it ran once it is over.
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}

package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/config"
	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/game/events"
	"github.com/mitchelldurbincs/Battleship/internal/game/fleet"
)

const (
	DefaultShotAttempts = 1000
)

// GameConfig holds everything needed to build a Session. Zero values fall
// back to defaults.
type GameConfig struct {
	BoardSize         int
	Fleet             map[int]int
	PlacementAttempts int
	ShotAttempts      int

	Rng    *rand.Rand
	Logger zerolog.Logger

	// Tally is shared across sessions; a fresh one is created when nil
	Tally *Tally

	// EventBus lets callers subscribe to session events; created when nil
	EventBus *events.EventBus

	// LogEvents attaches a logging subscriber to the event bus
	LogEvents bool
	// EventTypes limits the logged events; empty logs every type
	EventTypes []string
	// EventDetails adds the full event payload to each log line
	EventDetails bool
}

// GameConfigFromSettings builds a GameConfig from the application config.
// A non-zero game.seed makes every round reproducible.
func GameConfigFromSettings(c *config.Config, logger zerolog.Logger) (GameConfig, error) {
	counts, err := c.Game.FleetCounts()
	if err != nil {
		return GameConfig{}, err
	}
	for length, count := range counts {
		if count == 0 {
			delete(counts, length)
		}
	}

	seed := c.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return GameConfig{
		BoardSize:         c.Game.BoardSize,
		Fleet:             counts,
		PlacementAttempts: c.Game.Placement.MaxAttempts,
		ShotAttempts:      c.Game.Computer.ShotAttempts,
		Rng:               rand.New(rand.NewSource(seed)),
		Logger:            logger,
		LogEvents:         true,
		EventTypes:        c.Logging.Events,
		EventDetails:      strings.EqualFold(c.Logging.Level, "debug") || strings.EqualFold(c.Logging.Level, "trace"),
	}, nil
}

func (gc *GameConfig) setupDefaults() {
	if gc.BoardSize == 0 {
		gc.BoardSize = core.DefaultBoardSize
	}
	if len(gc.Fleet) == 0 {
		gc.Fleet = fleet.DefaultCounts()
	}
	if gc.PlacementAttempts <= 0 {
		gc.PlacementAttempts = fleet.DefaultPlacerConfig().MaxAttempts
	}
	if gc.ShotAttempts <= 0 {
		gc.ShotAttempts = DefaultShotAttempts
	}
	if gc.Rng == nil {
		gc.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if gc.Tally == nil {
		gc.Tally = NewTally()
	}
}

func (gc *GameConfig) validate() error {
	if gc.BoardSize < 1 {
		return fmt.Errorf("board size %d must be positive", gc.BoardSize)
	}
	if _, err := fleet.New(gc.Fleet); err != nil {
		return err
	}
	return nil
}

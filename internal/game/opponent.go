package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// Opponent picks the computer's next shot at the human board
type Opponent interface {
	ChooseTarget(b *core.Board) (core.Coordinate, error)
}

// ComputerOpponent picks the computer's shots: uniformly random among the
// cells of the human board that have not been shot yet.
type ComputerOpponent struct {
	rng         *rand.Rand
	maxAttempts int
	logger      zerolog.Logger
}

func NewComputerOpponent(rng *rand.Rand, maxAttempts int, logger zerolog.Logger) *ComputerOpponent {
	if maxAttempts <= 0 {
		maxAttempts = DefaultShotAttempts
	}
	return &ComputerOpponent{
		rng:         rng,
		maxAttempts: maxAttempts,
		logger:      logger.With().Str("component", "ComputerOpponent").Logger(),
	}
}

// ChooseTarget samples random cells until it finds an unshot one. Late in a
// round most samples miss, so after maxAttempts it enumerates the unshot
// cells and picks one directly. Both paths are uniform over unshot cells.
func (o *ComputerOpponent) ChooseTarget(b *core.Board) (core.Coordinate, error) {
	size := b.Size()
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		c := core.NewCoordinate(o.rng.Intn(size), o.rng.Intn(size))
		if !b.IsShot(c) {
			return c, nil
		}
	}

	candidates := b.UnshotCells()
	if len(candidates) == 0 {
		return core.Coordinate{}, ErrNoTargets
	}
	o.logger.Debug().
		Int("attempts", o.maxAttempts).
		Int("candidates", len(candidates)).
		Msg("Sampling exhausted, picking from unshot cells")
	return candidates[o.rng.Intn(len(candidates))], nil
}

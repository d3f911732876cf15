package fleet

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// PlacerConfig holds configuration for random fleet placement
type PlacerConfig struct {
	MaxAttempts int // per ship
}

// DefaultPlacerConfig returns a sensible default configuration
func DefaultPlacerConfig() PlacerConfig {
	return PlacerConfig{MaxAttempts: 1000}
}

// Placer lays out fleets at random with a caller-supplied RNG, so a fixed
// seed always produces the same layout.
type Placer struct {
	config PlacerConfig
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewPlacer creates a new random placer
func NewPlacer(config PlacerConfig, rng *rand.Rand, logger zerolog.Logger) *Placer {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultPlacerConfig().MaxAttempts
	}
	return &Placer{
		config: config,
		rng:    rng,
		logger: logger.With().Str("component", "FleetPlacer").Logger(),
	}
}

// RandomPlacement puts ships of the given sizes on the board, in order.
// The board is split into quadrant sections whose order is shuffled; each
// attempt picks a section, an origin inside it and an orientation, and the
// first valid placement wins. Sectioning spreads the fleet out instead of
// letting it cluster.
//
// Work happens on a copy of the board. If any ship cannot be placed within
// MaxAttempts the board is left untouched and ErrPlacementExhausted is
// returned.
func (p *Placer) RandomPlacement(b *core.Board, sizes []int) ([]core.Placement, error) {
	sections := Quadrants(b.Size())
	if len(sections) == 0 {
		return nil, fmt.Errorf("board size %d: %w", b.Size(), ErrPlacementExhausted)
	}
	p.rng.Shuffle(len(sections), func(i, j int) {
		sections[i], sections[j] = sections[j], sections[i]
	})

	staged := b.Clone()
	placed := make([]core.Placement, 0, len(sizes))
	for _, size := range sizes {
		placement, attempts, ok := p.placeShip(staged, sections, size)
		if !ok {
			p.logger.Warn().
				Int("ship_size", size).
				Int("attempts", attempts).
				Int("placed", len(placed)).
				Msg("Giving up on random placement")
			return nil, fmt.Errorf("ship of size %d after %d attempts: %w", size, attempts, ErrPlacementExhausted)
		}
		p.logger.Debug().
			Int("ship_size", size).
			Int("attempts", attempts).
			Str("origin", placement.Origin.String()).
			Str("orientation", placement.Orientation.String()).
			Msg("Ship placed")
		placed = append(placed, placement)
	}

	*b = *staged
	return placed, nil
}

// PlaceFleet places every remaining ship of f and marks them as taken.
func (p *Placer) PlaceFleet(b *core.Board, f *Fleet) ([]core.Placement, error) {
	placed, err := p.RandomPlacement(b, f.Sizes())
	if err != nil {
		return nil, err
	}
	for _, pl := range placed {
		if err := f.Take(pl.Length); err != nil {
			return placed, err
		}
	}
	return placed, nil
}

func (p *Placer) placeShip(b *core.Board, sections []Section, size int) (core.Placement, int, bool) {
	for attempts := 1; attempts <= p.config.MaxAttempts; attempts++ {
		s := sections[p.rng.Intn(len(sections))]
		orientation := core.Vertical
		if p.rng.Intn(2) == 1 {
			orientation = core.Horizontal
		}
		row := s.Top + p.rng.Intn(s.Bottom-s.Top)
		col := s.Left + p.rng.Intn(s.Right-s.Left)

		placement := core.NewPlacement(row, col, size, orientation)
		if err := b.PlaceShip(placement); err == nil {
			return placement, attempts, true
		}
	}
	return core.Placement{}, p.config.MaxAttempts, false
}

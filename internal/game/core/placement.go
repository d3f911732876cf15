package core

import "fmt"

// ValidatePlacement checks a ship against the board. A placement is valid
// when every cell is on the board, none already holds a ship, and no ship
// cell sits in the Moore neighborhood of any of them: ships never touch,
// not even diagonally. The returned error wraps ErrInvalidPlacement together
// with the specific reason.
func ValidatePlacement(b *Board, p Placement) error {
	if p.Length <= 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidPlacement, ErrInvalidShipLength, p.Length)
	}
	cells := p.Cells()
	for _, c := range cells {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: %w: %s", ErrInvalidPlacement, ErrOutOfBounds, p)
		}
	}
	for _, c := range cells {
		if b.cellUnchecked(c) != CellEmpty {
			return fmt.Errorf("%w: %w at %s", ErrInvalidPlacement, ErrOverlap, c)
		}
		for _, n := range c.ValidNeighbors(b.N) {
			if b.cellUnchecked(n) == CellShip {
				return fmt.Errorf("%w: %w at %s", ErrInvalidPlacement, ErrAdjacent, n)
			}
		}
	}
	return nil
}

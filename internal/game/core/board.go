package core

import "fmt"

// Board is a square grid holding one side's fleet and the shots fired at it.
type Board struct {
	N int
	T []CellState // length = N*N (row-major)
}

// DefaultBoardSize is the classic 10×10 grid.
const DefaultBoardSize = 10

func NewBoard(size int) *Board {
	// All cells start as open water (CellEmpty is the zero value)
	return &Board{N: size, T: make([]CellState, size*size)}
}

func (b *Board) Size() int { return b.N }
func (b *Board) Idx(c Coordinate) int { return c.ToIndex(b.N) }
func (b *Board) InBounds(c Coordinate) bool { return c.IsValid(b.N) }
func (b *Board) Coord(idx int) Coordinate { return FromIndex(idx, b.N) }
func (b *Board) IsShip(c Coordinate) bool { return b.InBounds(c) && b.T[b.Idx(c)] == CellShip }
func (b *Board) IsShot(c Coordinate) bool { return b.InBounds(c) && b.T[b.Idx(c)].IsShot() }
func (b *Board) set(c Coordinate, s CellState) { b.T[b.Idx(c)] = s }
func (b *Board) cellUnchecked(c Coordinate) CellState { return b.T[b.Idx(c)] }

// Cell returns the state of a cell and whether the coordinate is on the board.
func (b *Board) Cell(c Coordinate) (CellState, bool) {
	if !b.InBounds(c) {
		return CellEmpty, false
	}
	return b.T[b.Idx(c)], true
}

// PlaceShip writes the ship onto the board if the placement is valid.
// On failure the board is untouched and the error wraps ErrInvalidPlacement.
func (b *Board) PlaceShip(p Placement) error {
	if err := ValidatePlacement(b, p); err != nil {
		return err
	}
	for _, c := range p.Cells() {
		b.set(c, CellShip)
	}
	return nil
}

// RecordShot marks a cell as shot. A cell can only be shot once; a second
// shot returns ErrAlreadyShot and leaves the board unchanged.
func (b *Board) RecordShot(c Coordinate) (ShotResult, error) {
	if !b.InBounds(c) {
		return ShotMiss, fmt.Errorf("shot at %s: %w", c, ErrInvalidCoordinates)
	}
	switch b.cellUnchecked(c) {
	case CellShip:
		b.set(c, CellHit)
		return ShotHit, nil
	case CellEmpty:
		b.set(c, CellMiss)
		return ShotMiss, nil
	default:
		return ShotMiss, fmt.Errorf("shot at %s: %w", c, ErrAlreadyShot)
	}
}

// HasSurvivingShips reports whether any ship cell is still unshot.
func (b *Board) HasSurvivingShips() bool {
	for _, s := range b.T {
		if s == CellShip {
			return true
		}
	}
	return false
}

// Count returns how many cells are in the given state.
func (b *Board) Count(state CellState) int {
	n := 0
	for _, s := range b.T {
		if s == state {
			n++
		}
	}
	return n
}

// UnshotCells returns every cell that has not been fired at, in row-major order.
func (b *Board) UnshotCells() []Coordinate {
	cells := make([]Coordinate, 0, len(b.T))
	for idx, s := range b.T {
		if !s.IsShot() {
			cells = append(cells, b.Coord(idx))
		}
	}
	return cells
}

// Snapshot returns a copy of the grid as rows of cell states.
func (b *Board) Snapshot() [][]CellState {
	return b.snapshot(false)
}

// MaskedSnapshot returns the grid as the opponent sees it: unshot ship
// cells are reported as empty water.
func (b *Board) MaskedSnapshot() [][]CellState {
	return b.snapshot(true)
}

func (b *Board) snapshot(masked bool) [][]CellState {
	rows := make([][]CellState, b.N)
	for r := range rows {
		row := make([]CellState, b.N)
		copy(row, b.T[r*b.N:(r+1)*b.N])
		if masked {
			for i, s := range row {
				if s == CellShip {
					row[i] = CellEmpty
				}
			}
		}
		rows[r] = row
	}
	return rows
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	t := make([]CellState, len(b.T))
	copy(t, b.T)
	return &Board{N: b.N, T: t}
}

package core

import "fmt"

// Coordinate is a cell position, row first. Row 0 is the top of the board.
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a row-major board index
func FromIndex(idx, size int) Coordinate {
	return Coordinate{Row: idx / size, Col: idx % size}
}

// IsValid checks if the coordinate lies on a size×size board
func (c Coordinate) IsValid(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// ToIndex converts the coordinate to a row-major board index
func (c Coordinate) ToIndex(size int) int {
	return c.Row*size + c.Col
}

func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// IsTouching reports whether other is in the Moore neighborhood of c
// (the 8 surrounding cells, diagonals included). A cell does not touch itself.
func (c Coordinate) IsTouching(other Coordinate) bool {
	dr, dc := c.Row-other.Row, c.Col-other.Col
	if c.Equal(other) {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// mooreOffsets lists the 8 neighbor offsets, clockwise from north-west.
var mooreOffsets = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1},
	{1, 1}, {1, 0}, {1, -1},
	{0, -1},
}

// Neighbors returns the 8 surrounding coordinates, which may be off the board.
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, len(mooreOffsets))
	for _, off := range mooreOffsets {
		out = append(out, c.Add(off))
	}
	return out
}

// ValidNeighbors returns the neighbors clipped to a size×size board.
func (c Coordinate) ValidNeighbors(size int) []Coordinate {
	out := make([]Coordinate, 0, len(mooreOffsets))
	for _, n := range c.Neighbors() {
		if n.IsValid(size) {
			out = append(out, n)
		}
	}
	return out
}

// Label renders the coordinate the way players read it: column letter,
// then 1-based row number ("A1" is the top-left cell).
func (c Coordinate) Label() string {
	if c.Col < 0 || c.Col >= 26 {
		return c.String()
	}
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

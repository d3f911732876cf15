package core

import "fmt"

// Orientation is the direction a ship extends from its origin.
type Orientation int

const (
	// Vertical ships grow downward, one row per segment.
	Vertical Orientation = iota
	// Horizontal ships grow rightward, one column per segment.
	Horizontal
)

func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Placement describes a ship about to be put on a board. Only the
// occupied cells persist once it has been placed.
type Placement struct {
	Origin      Coordinate
	Length      int
	Orientation Orientation
}

func NewPlacement(row, col, length int, o Orientation) Placement {
	return Placement{Origin: NewCoordinate(row, col), Length: length, Orientation: o}
}

// Cells returns the cells the ship would occupy, starting at the origin.
// The result is not clipped to any board.
func (p Placement) Cells() []Coordinate {
	if p.Length <= 0 {
		return nil
	}
	step := Coordinate{Row: 1}
	if p.Orientation == Horizontal {
		step = Coordinate{Col: 1}
	}
	cells := make([]Coordinate, p.Length)
	cur := p.Origin
	for i := range cells {
		cells[i] = cur
		cur = cur.Add(step)
	}
	return cells
}

func (p Placement) String() string {
	return fmt.Sprintf("len=%d at %s %s", p.Length, p.Origin, p.Orientation)
}

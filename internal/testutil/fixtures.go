package testutil

import (
	"fmt"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// BoardFromRows builds a square board from a picture, one string per row:
//
//	'.' empty, 'S' ship, 'X' hit, 'o' miss
//
// It panics on malformed input; fixtures are written by hand.
func BoardFromRows(rows ...string) *core.Board {
	b := core.NewBoard(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			panic(fmt.Sprintf("row %d has %d cells, want %d", r, len(row), len(rows)))
		}
		for c, ch := range row {
			var state core.CellState
			switch ch {
			case '.':
				state = core.CellEmpty
			case 'S':
				state = core.CellShip
			case 'X':
				state = core.CellHit
			case 'o':
				state = core.CellMiss
			default:
				panic(fmt.Sprintf("unknown cell %q at row %d col %d", ch, r, c))
			}
			b.T[b.Idx(core.NewCoordinate(r, c))] = state
		}
	}
	return b
}

// ShipCells lists every cell of the board that holds an unshot ship.
func ShipCells(b *core.Board) []core.Coordinate {
	var cells []core.Coordinate
	for idx, s := range b.T {
		if s == core.CellShip {
			cells = append(cells, b.Coord(idx))
		}
	}
	return cells
}

// ShipGroups splits the ship cells into orthogonally connected groups, one
// per ship when the adjacency rule holds.
func ShipGroups(b *core.Board) [][]core.Coordinate {
	seen := make(map[core.Coordinate]bool)
	var groups [][]core.Coordinate
	for _, start := range ShipCells(b) {
		if seen[start] {
			continue
		}
		var group []core.Coordinate
		stack := []core.Coordinate{start}
		seen[start] = true
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, c)
			for _, n := range []core.Coordinate{{Row: c.Row - 1, Col: c.Col}, {Row: c.Row + 1, Col: c.Col}, {Row: c.Row, Col: c.Col - 1}, {Row: c.Row, Col: c.Col + 1}} {
				if b.IsShip(n) && !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

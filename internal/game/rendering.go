package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// This file contains all board rendering functionality for the session.

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
	ColorCyan  = "\033[36m"
	ColorGray  = "\033[90m"
	ColorBold  = "\033[1m"
)

const (
	EmptySymbol   = "·"
	ShipSymbol    = "■"
	HitSymbol     = "X"
	MissSymbol    = "o"
	PreviewSymbol = "+"
)

// RenderOptions controls how a grid is drawn
type RenderOptions struct {
	Color           bool
	ShowCoordinates bool
	Title           string

	// Preview overlays the cells of a candidate placement
	Preview *Preview
}

// RenderGrid draws a board snapshot as text, one row per line.
func RenderGrid(grid [][]core.CellState, opts RenderOptions) string {
	size := len(grid)

	preview := make(map[core.Coordinate]bool)
	if opts.Preview != nil {
		for _, c := range opts.Preview.Cells {
			preview[c] = true
		}
	}

	var sb strings.Builder
	// Each cell takes 2 columns plus room for color codes
	sb.Grow((size*14 + 8) * (size + 3))

	if opts.Title != "" {
		writeColored(&sb, opts.Color, ColorBold, opts.Title)
		sb.WriteString("\n")
	}

	if opts.ShowCoordinates {
		sb.WriteString("   ")
		for col := 0; col < size; col++ {
			sb.WriteString(" ")
			sb.WriteByte(byte('A' + col))
		}
		sb.WriteString("\n")
	}

	for row := 0; row < size; row++ {
		if opts.ShowCoordinates {
			label := strconv.Itoa(row + 1)
			sb.WriteString(strings.Repeat(" ", 3-len(label)))
			sb.WriteString(label)
		}
		for col := 0; col < size; col++ {
			sb.WriteString(" ")
			if preview[core.NewCoordinate(row, col)] {
				color := ColorGreen
				if !opts.Preview.Valid {
					color = ColorRed
				}
				writeColored(&sb, opts.Color, color, PreviewSymbol)
				continue
			}
			writeCell(&sb, grid[row][col], opts.Color)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Legend explains the symbols used by RenderGrid.
func Legend() string {
	return EmptySymbol + "=water " + ShipSymbol + "=ship " + HitSymbol + "=hit " + MissSymbol + "=miss " + PreviewSymbol + "=preview"
}

func writeCell(sb *strings.Builder, state core.CellState, color bool) {
	switch state {
	case core.CellShip:
		writeColored(sb, color, ColorCyan, ShipSymbol)
	case core.CellHit:
		writeColored(sb, color, ColorRed, HitSymbol)
	case core.CellMiss:
		writeColored(sb, color, ColorGray, MissSymbol)
	default:
		writeColored(sb, color, ColorGray, EmptySymbol)
	}
}

func writeColored(sb *strings.Builder, enabled bool, color, text string) {
	if !enabled {
		sb.WriteString(text)
		return
	}
	sb.WriteString(color)
	sb.WriteString(text)
	sb.WriteString(ColorReset)
}

// Board renders one side's board from the human's point of view: the
// human's own board in full, the computer's board masked.
func (s *Session) Board(side core.Side, opts RenderOptions) string {
	if side == core.SideComputer {
		return RenderGrid(s.ComputerBoard(), opts)
	}
	return RenderGrid(s.HumanBoard(), opts)
}

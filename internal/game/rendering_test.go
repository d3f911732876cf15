package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/testutil"
)

func TestRenderGrid(t *testing.T) {
	b := testutil.BoardFromRows(
		"SX.",
		".o.",
		"...",
	)

	t.Run("plain", func(t *testing.T) {
		out := RenderGrid(b.Snapshot(), RenderOptions{})
		assert.Equal(t, " ■ X ·\n · o ·\n · · ·\n", out)
	})

	t.Run("masked", func(t *testing.T) {
		out := RenderGrid(b.MaskedSnapshot(), RenderOptions{})
		assert.Equal(t, " · X ·\n · o ·\n · · ·\n", out)
	})

	t.Run("coordinates and title", func(t *testing.T) {
		out := RenderGrid(b.Snapshot(), RenderOptions{ShowCoordinates: true, Title: "Your fleet"})
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "Your fleet", lines[0])
		assert.Equal(t, "    A B C", lines[1])
		assert.Equal(t, "  1 ■ X ·", lines[2])
		assert.Equal(t, "  3 · · ·", lines[4])
	})

	t.Run("color", func(t *testing.T) {
		out := RenderGrid(b.Snapshot(), RenderOptions{Color: true})
		assert.Contains(t, out, ColorRed+HitSymbol+ColorReset)
		assert.Contains(t, out, ColorCyan+ShipSymbol+ColorReset)
	})

	t.Run("preview", func(t *testing.T) {
		preview := &Preview{
			Cells: []core.Coordinate{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}},
			Valid: false,
		}
		out := RenderGrid(b.Snapshot(), RenderOptions{Preview: preview})
		assert.Equal(t, " ■ X ·\n · o ·\n + + +\n", out, "off-board preview cells are dropped")

		colored := RenderGrid(b.Snapshot(), RenderOptions{Color: true, Preview: preview})
		assert.Contains(t, colored, ColorRed+PreviewSymbol)
	})
}

func TestSession_Board(t *testing.T) {
	s := newTestSession(t, GameConfig{})
	computerView := s.Board(core.SideComputer, RenderOptions{})
	assert.NotContains(t, computerView, ShipSymbol)

	_, err := s.AutoPlace()
	require.NoError(t, err)
	humanView := s.Board(core.SideHuman, RenderOptions{})
	assert.Equal(t, 17, strings.Count(humanView, ShipSymbol))
}

func TestLegend(t *testing.T) {
	legend := Legend()
	for _, symbol := range []string{EmptySymbol, ShipSymbol, HitSymbol, MissSymbol, PreviewSymbol} {
		assert.Contains(t, legend, symbol)
	}
}

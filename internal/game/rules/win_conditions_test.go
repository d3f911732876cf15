package rules

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/testutil"
)

type stubFleet bool

func (s stubFleet) HasSurvivingShips() bool { return bool(s) }

func TestCheckAfterShot(t *testing.T) {
	wc := NewWinConditionChecker(zerolog.Nop())

	over, winner := wc.CheckAfterShot(core.SideHuman, stubFleet(true))
	assert.False(t, over)
	assert.Equal(t, core.SideNone, winner)

	over, winner = wc.CheckAfterShot(core.SideComputer, stubFleet(false))
	assert.True(t, over)
	assert.Equal(t, core.SideComputer, winner)
}

func TestCheckAfterShot_Board(t *testing.T) {
	wc := NewWinConditionChecker(zerolog.Nop())
	b := testutil.BoardFromRows(
		"SS.",
		"...",
		"...",
	)

	_, err := b.RecordShot(core.NewCoordinate(0, 0))
	assert.NoError(t, err)
	over, _ := wc.CheckAfterShot(core.SideHuman, b)
	assert.False(t, over)

	_, err = b.RecordShot(core.NewCoordinate(0, 1))
	assert.NoError(t, err)
	over, winner := wc.CheckAfterShot(core.SideHuman, b)
	assert.True(t, over)
	assert.Equal(t, core.SideHuman, winner)
}

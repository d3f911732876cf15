package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/game/fleet"
)

func TestResultFor(t *testing.T) {
	tests := []struct {
		err      error
		expected Result
	}{
		{nil, ResultOK},
		{fmt.Errorf("%w: Active", ErrWrongPhase), ResultWrongPhase},
		{ErrNoShipSelected, ResultNoShipSelected},
		{fmt.Errorf("size 4: %w", fleet.ErrNoShipsRemaining), ResultNoShipsRemaining},
		{fmt.Errorf("ship 5: %w", fleet.ErrPlacementExhausted), ResultPlacementExhausted},
		{fmt.Errorf("%w: %w", core.ErrInvalidPlacement, core.ErrAdjacent), ResultInvalidPlacement},
		{fmt.Errorf("%w: %w", core.ErrInvalidPlacement, core.ErrOutOfBounds), ResultInvalidPlacement},
		{fmt.Errorf("shot: %w", core.ErrAlreadyShot), ResultAlreadyShot},
		{fmt.Errorf("shot: %w", core.ErrInvalidCoordinates), ResultInvalidCoordinates},
		{errors.New("boom"), ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, resultFor(tt.err))
		})
	}
}

func TestResult(t *testing.T) {
	assert.True(t, ResultOK.Accepted())
	assert.False(t, ResultAlreadyShot.Accepted())
	assert.Equal(t, "Unknown(99)", Result(99).String())

	out := rejected(ErrNoShipSelected)
	assert.Equal(t, ResultNoShipSelected, out.Result)
	assert.Equal(t, "no ship size selected", out.Status)
	assert.False(t, out.GameOver())
}

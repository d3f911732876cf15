package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for _, size := range []int{1, 5, 10, 26} {
		board := NewBoard(size)

		assert.Equal(t, size, board.Size())
		assert.Len(t, board.T, size*size)
		for i, cell := range board.T {
			assert.Equal(t, CellEmpty, cell, "cell %d should start empty", i)
		}
		assert.False(t, board.HasSurvivingShips())
	}
}

func TestBoard_PlaceShip(t *testing.T) {
	t.Run("vertical placement marks cells", func(t *testing.T) {
		board := NewBoard(10)
		require.NoError(t, board.PlaceShip(NewPlacement(0, 0, 5, Vertical)))

		for r := 0; r < 5; r++ {
			assert.True(t, board.IsShip(NewCoordinate(r, 0)), "row %d should hold a ship", r)
		}
		assert.False(t, board.IsShip(NewCoordinate(5, 0)))
		assert.Equal(t, 5, board.Count(CellShip))
	})

	t.Run("invalid placement leaves board untouched", func(t *testing.T) {
		board := NewBoard(10)
		require.NoError(t, board.PlaceShip(NewPlacement(0, 0, 2, Horizontal)))
		before := board.Snapshot()

		err := board.PlaceShip(NewPlacement(1, 1, 2, Horizontal))
		assert.ErrorIs(t, err, ErrInvalidPlacement)
		assert.ErrorIs(t, err, ErrAdjacent)
		assert.Equal(t, before, board.Snapshot())
	})

	t.Run("off the board", func(t *testing.T) {
		board := NewBoard(10)
		err := board.PlaceShip(NewPlacement(8, 0, 3, Vertical))
		assert.ErrorIs(t, err, ErrInvalidPlacement)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Zero(t, board.Count(CellShip))
	})
}

func TestBoard_RecordShot(t *testing.T) {
	board := NewBoard(10)
	require.NoError(t, board.PlaceShip(NewPlacement(2, 2, 2, Horizontal)))

	result, err := board.RecordShot(NewCoordinate(2, 2))
	require.NoError(t, err)
	assert.Equal(t, ShotHit, result)
	state, ok := board.Cell(NewCoordinate(2, 2))
	require.True(t, ok)
	assert.Equal(t, CellHit, state)

	result, err = board.RecordShot(NewCoordinate(0, 0))
	require.NoError(t, err)
	assert.Equal(t, ShotMiss, result)
	state, _ = board.Cell(NewCoordinate(0, 0))
	assert.Equal(t, CellMiss, state)

	t.Run("second shot is rejected and changes nothing", func(t *testing.T) {
		before := board.Snapshot()
		for _, c := range []Coordinate{{2, 2}, {0, 0}} {
			_, err := board.RecordShot(c)
			assert.ErrorIs(t, err, ErrAlreadyShot)
		}
		assert.Equal(t, before, board.Snapshot())
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := board.RecordShot(NewCoordinate(10, 0))
		assert.ErrorIs(t, err, ErrInvalidCoordinates)
	})
}

func TestBoard_HasSurvivingShips(t *testing.T) {
	board := NewBoard(10)
	require.NoError(t, board.PlaceShip(NewPlacement(0, 0, 2, Horizontal)))
	require.NoError(t, board.PlaceShip(NewPlacement(5, 5, 3, Vertical)))
	assert.True(t, board.HasSurvivingShips())

	ships := []Coordinate{{0, 0}, {0, 1}, {5, 5}, {6, 5}}
	for _, c := range ships {
		_, err := board.RecordShot(c)
		require.NoError(t, err)
		assert.True(t, board.HasSurvivingShips(), "one ship cell is still afloat")
	}

	_, err := board.RecordShot(NewCoordinate(7, 5))
	require.NoError(t, err)
	assert.False(t, board.HasSurvivingShips())
	assert.Equal(t, 5, board.Count(CellHit))
}

func TestBoard_MaskedSnapshot(t *testing.T) {
	board := NewBoard(4)
	require.NoError(t, board.PlaceShip(NewPlacement(0, 0, 2, Vertical)))
	_, err := board.RecordShot(NewCoordinate(0, 0))
	require.NoError(t, err)
	_, err = board.RecordShot(NewCoordinate(3, 3))
	require.NoError(t, err)

	full := board.Snapshot()
	masked := board.MaskedSnapshot()

	assert.Equal(t, CellShip, full[1][0])
	assert.Equal(t, CellEmpty, masked[1][0], "unshot ship cells must not leak")
	assert.Equal(t, CellHit, masked[0][0])
	assert.Equal(t, CellMiss, masked[3][3])

	for _, row := range masked {
		for _, cell := range row {
			assert.NotEqual(t, CellShip, cell)
		}
	}
}

func TestBoard_SnapshotIsCopy(t *testing.T) {
	board := NewBoard(3)
	snap := board.Snapshot()
	snap[0][0] = CellShip
	assert.False(t, board.HasSurvivingShips())
}

func TestBoard_UnshotCells(t *testing.T) {
	board := NewBoard(3)
	assert.Len(t, board.UnshotCells(), 9)

	_, err := board.RecordShot(NewCoordinate(1, 1))
	require.NoError(t, err)
	cells := board.UnshotCells()
	assert.Len(t, cells, 8)
	assert.NotContains(t, cells, NewCoordinate(1, 1))
}

func TestBoard_Clone(t *testing.T) {
	board := NewBoard(5)
	require.NoError(t, board.PlaceShip(NewPlacement(0, 0, 3, Horizontal)))

	clone := board.Clone()
	assert.Equal(t, board.Snapshot(), clone.Snapshot())

	_, err := clone.RecordShot(NewCoordinate(0, 0))
	require.NoError(t, err)
	assert.True(t, board.IsShip(NewCoordinate(0, 0)), "original must not change")
}

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{"help", Command{Kind: CmdHelp}},
		{"select 5", Command{Kind: CmdSelect, Size: 5}},
		{"  SELECT   3 ", Command{Kind: CmdSelect, Size: 3}},
		{"rotate", Command{Kind: CmdRotate}},
		{"place B7", Command{Kind: CmdPlace, Row: 6, Col: 1}},
		{"place 6 1", Command{Kind: CmdPlace, Row: 6, Col: 1}},
		{"preview a1", Command{Kind: CmdPreview, Row: 0, Col: 0}},
		{"auto", Command{Kind: CmdAuto}},
		{"start", Command{Kind: CmdStart}},
		{"fire J10", Command{Kind: CmdFire, Row: 9, Col: 9}},
		{"f 0 9", Command{Kind: CmdFire, Row: 0, Col: 9}},
		{"restart", Command{Kind: CmdRestart}},
		{"retry", Command{Kind: CmdRestart}},
		{"score", Command{Kind: CmdScore}},
		{"board", Command{Kind: CmdBoard}},
		{"quit", Command{Kind: CmdQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"", ErrUnknownCommand},
		{"dance", ErrUnknownCommand},
		{"select", ErrBadArguments},
		{"select five", ErrBadArguments},
		{"select 0", ErrBadArguments},
		{"rotate now", ErrBadArguments},
		{"place", ErrBadCell},
		{"place K1", ErrBadCell},
		{"place A11", ErrBadCell},
		{"place A0", ErrBadCell},
		{"fire 7", ErrBadCell},
		{"fire x y", ErrBadCell},
		{"fire 1 2 3", ErrBadCell},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line, 10)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCell_NumericPassesThrough(t *testing.T) {
	row, col, err := ParseCell([]string{"12", "-1"}, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, row)
	assert.Equal(t, -1, col)
}

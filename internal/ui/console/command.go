package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrBadCell        = errors.New("bad cell")
)

// CommandKind identifies a console command
type CommandKind int

const (
	CmdHelp CommandKind = iota
	CmdSelect
	CmdRotate
	CmdPreview
	CmdPlace
	CmdAuto
	CmdStart
	CmdFire
	CmdRestart
	CmdScore
	CmdBoard
	CmdQuit
)

var commandNames = map[string]CommandKind{
	"help":    CmdHelp,
	"?":       CmdHelp,
	"select":  CmdSelect,
	"rotate":  CmdRotate,
	"r":       CmdRotate,
	"preview": CmdPreview,
	"hover":   CmdPreview,
	"place":   CmdPlace,
	"p":       CmdPlace,
	"auto":    CmdAuto,
	"start":   CmdStart,
	"fire":    CmdFire,
	"f":       CmdFire,
	"restart": CmdRestart,
	"retry":   CmdRestart,
	"score":   CmdScore,
	"board":   CmdBoard,
	"show":    CmdBoard,
	"quit":    CmdQuit,
	"exit":    CmdQuit,
	"q":       CmdQuit,
}

// Command is one parsed line of input
type Command struct {
	Kind CommandKind
	Size int
	Row  int
	Col  int
}

// ParseCommand parses a line such as "place B7", "fire 3 4" or "select 5".
func ParseCommand(line string, boardSize int) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	kind, ok := commandNames[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	cmd := Command{Kind: kind}
	args := fields[1:]

	switch kind {
	case CmdSelect:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: select takes a ship size", ErrBadArguments)
		}
		size, err := strconv.Atoi(args[0])
		if err != nil || size <= 0 {
			return Command{}, fmt.Errorf("%w: %q is not a ship size", ErrBadArguments, args[0])
		}
		cmd.Size = size
	case CmdPreview, CmdPlace, CmdFire:
		row, col, err := ParseCell(args, boardSize)
		if err != nil {
			return Command{}, err
		}
		cmd.Row, cmd.Col = row, col
	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, fields[0])
		}
	}

	return cmd, nil
}

// ParseCell accepts either a label ("B7": column letter, 1-based row) or two
// 0-based integers ("6 1": row then column). The result is checked against
// boardSize only for the label form; numeric cells pass through so the game
// reports out-of-range shots itself.
func ParseCell(args []string, boardSize int) (row, col int, err error) {
	switch len(args) {
	case 1:
		return parseLabel(args[0], boardSize)
	case 2:
		row, errRow := strconv.Atoi(args[0])
		col, errCol := strconv.Atoi(args[1])
		if errRow != nil || errCol != nil {
			return 0, 0, fmt.Errorf("%w: %q %q are not numbers", ErrBadCell, args[0], args[1])
		}
		return row, col, nil
	default:
		return 0, 0, fmt.Errorf("%w: expected a cell like B7 or \"row col\"", ErrBadCell)
	}
}

func parseLabel(label string, boardSize int) (int, int, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if len(label) < 2 || !unicode.IsLetter(rune(label[0])) {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCell, label)
	}

	col := int(label[0] - 'A')
	n, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCell, label)
	}
	row := n - 1

	if col < 0 || col >= boardSize || row < 0 || row >= boardSize {
		return 0, 0, fmt.Errorf("%w: %q is off the board", ErrBadCell, label)
	}
	return row, col, nil
}

const helpText = `Commands:
  select <n>       choose the length of the next ship to place
  rotate           toggle vertical/horizontal placement
  preview <cell>   show where the selected ship would go
  place <cell>     place the selected ship with its top/left end at <cell>
  auto             place the remaining ships at random
  start            begin the battle once every ship is placed
  fire <cell>      shoot at the enemy board
  restart          abandon this round and start a new one
  score            show the win tally
  board            redraw the boards
  quit             leave the game
Cells are written B7 (column letter, row number) or "6 1" (0-based row and column).`

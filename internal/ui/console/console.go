// Package console is a line-oriented terminal front end for a game session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game"
	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/game/states"
)

// Options controls rendering
type Options struct {
	Color           bool
	ShowCoordinates bool
}

// Console reads commands from in, applies them to a session and writes the
// boards and status to out.
type Console struct {
	session *game.Session
	in      io.Reader
	out     io.Writer
	logger  zerolog.Logger

	mu   sync.Mutex
	opts Options

	// preview is shown on the next redraw during placement
	preview *game.Preview
}

func New(session *game.Session, in io.Reader, out io.Writer, opts Options, logger zerolog.Logger) *Console {
	return &Console{
		session: session,
		in:      in,
		out:     out,
		opts:    opts,
		logger:  logger.With().Str("component", "Console").Logger(),
	}
}

// SetOptions swaps the rendering options. Safe to call from another
// goroutine, e.g. a config watcher.
func (c *Console) SetOptions(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts = opts
}

func (c *Console) options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

const restartHint = "Type \"restart\" to play again or \"quit\" to leave."

// Run processes commands until quit, end of input or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	// Cancelling on return releases the reader if it is holding a line
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	c.println("Battleship. Type \"help\" for commands.")
	c.redraw()
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			c.println("")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				c.prompt()
				continue
			}
			if quit := c.Execute(line); quit {
				return nil
			}
			c.prompt()
		}
	}
}

// Execute runs a single line of input and reports whether the user asked to
// quit.
func (c *Console) Execute(line string) bool {
	cmd, err := ParseCommand(line, c.session.BoardSize())
	if err != nil {
		c.println(err.Error())
		return false
	}
	c.logger.Debug().Str("line", line).Int("kind", int(cmd.Kind)).Msg("Command parsed")

	var (
		outcome game.Outcome
		cmdErr  error
	)
	switch cmd.Kind {
	case CmdQuit:
		c.println("Goodbye.")
		return true
	case CmdHelp:
		c.println(helpText)
		return false
	case CmdScore:
		c.printScore()
		return false
	case CmdBoard:
		c.redraw()
		return false
	case CmdPreview:
		c.showPreview(cmd.Row, cmd.Col)
		return false
	case CmdSelect:
		outcome, cmdErr = c.session.SelectShipSize(cmd.Size)
	case CmdRotate:
		outcome, cmdErr = c.session.ToggleOrientation()
	case CmdPlace:
		outcome, cmdErr = c.session.PlaceAt(cmd.Row, cmd.Col)
	case CmdAuto:
		outcome, cmdErr = c.session.AutoPlace()
	case CmdStart:
		outcome, cmdErr = c.session.StartGame()
	case CmdFire:
		outcome, cmdErr = c.session.ShootAt(cmd.Row, cmd.Col)
	case CmdRestart:
		outcome, cmdErr = c.session.Restart()
	}

	c.preview = nil
	if cmdErr != nil {
		c.println(outcome.Status)
		if errors.Is(cmdErr, game.ErrWrongPhase) && c.session.Phase().IsTerminal() {
			c.println(restartHint)
		}
		return false
	}

	c.redraw()
	c.println(outcome.Status)
	if outcome.GameOver() {
		c.printScore()
		c.println(restartHint)
	}
	return false
}

func (c *Console) showPreview(row, col int) {
	preview, err := c.session.PreviewAt(row, col)
	if err != nil {
		c.println(err.Error())
		return
	}
	c.preview = &preview
	c.redraw()
	c.preview = nil

	p := preview.Placement
	what := fmt.Sprintf("%d-cell %s ship at %s", p.Length, p.Orientation, p.Origin.Label())
	if preview.Valid {
		c.println(what + " fits")
	} else {
		c.println(fmt.Sprintf("%s does not fit: %v", what, preview.Reason))
	}
}

func (c *Console) redraw() {
	opts := c.options()
	render := game.RenderOptions{Color: opts.Color, ShowCoordinates: opts.ShowCoordinates}

	phase := c.session.Phase()
	if phase != states.PhasePlacing {
		render.Title = "Enemy waters"
		c.print(c.session.Board(core.SideComputer, render))
		c.println("")
	}

	render.Title = "Your fleet"
	render.Preview = c.preview
	c.print(c.session.Board(core.SideHuman, render))
	c.println(game.Legend())

	if phase == states.PhasePlacing {
		c.println(c.placementStatus())
	}
}

func (c *Console) placementStatus() string {
	remaining := c.session.FleetRemaining()
	parts := make([]string, 0, len(remaining))
	for _, length := range c.session.FleetLengths() {
		parts = append(parts, fmt.Sprintf("%d×%d", length, remaining[length]))
	}

	selected := "none"
	if size, ok := c.session.SelectedSize(); ok {
		selected = fmt.Sprintf("%d", size)
	}
	return fmt.Sprintf("To place (length×count): %s | selected: %s | orientation: %s",
		strings.Join(parts, " "), selected, c.session.Orientation())
}

func (c *Console) printScore() {
	tally := c.session.Tally()
	c.println(fmt.Sprintf("Score: you %d, computer %d", tally.Human, tally.Computer))
}

func (c *Console) prompt() {
	c.print(fmt.Sprintf("[%s] > ", strings.ToLower(c.session.Phase().String())))
}

func (c *Console) print(s string) {
	if _, err := io.WriteString(c.out, s); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		c.logger.Warn().Err(err).Msg("Writing to console failed")
	}
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}

package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mitchelldurbincs/Battleship/internal/config"
)

// fdWriter is implemented by *os.File
type fdWriter interface {
	Fd() uintptr
}

// ResolveColor decides whether ANSI colors should be written to out.
// "auto" colors only terminals and honours NO_COLOR.
func ResolveColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

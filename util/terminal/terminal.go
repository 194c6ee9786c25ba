package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	symbolDone  = "✓"
	symbolError = "✗"
)

// IsTerminal returns if f is attached to a terminal.
func IsTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// Output prints status lines, coloured when writing to a terminal.
type Output struct {
	writer io.Writer
	isTTY  bool
}

// NewOutput creates a new status output on w.
// The output is coloured if w is a terminal.
func NewOutput(w io.Writer) *Output {
	o := &Output{writer: w}
	if f, ok := w.(*os.File); ok {
		o.isTTY = IsTerminal(f)
	}
	return o
}

// Done prints a success line.
func (o *Output) Done(text string) {
	symbol := symbolDone
	if o.isTTY {
		symbol = color.GreenString(symbol)
	}
	fmt.Fprintln(o.writer, symbol, text)
}

// Error prints a failure line.
func (o *Output) Error(text string) {
	symbol := symbolError
	if o.isTTY {
		symbol = color.RedString(symbol)
	}
	fmt.Fprintln(o.writer, symbol, text)
}

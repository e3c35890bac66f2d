package cli

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives the human-readable lines a command produces for the user.
// Messages are printed verbatim; they are never treated as format strings.
type Sink interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
	// Blank writes an empty separator line.
	Blank()
}

// Console is the terminal Sink. Info, success, warning and blank lines go to
// out; errors go to errOut.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a console sink writing to the given streams.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:    out,
		errOut: errOut,
	}
}

// Out returns the writer used for regular output. Renderers draw tables and
// progress bars on it so they interleave correctly with status lines.
func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Info(msg string) {
	c.println(c.out, FormatInfo(msg))
}

func (c *Console) Success(msg string) {
	c.println(c.out, FormatSuccess(msg))
}

func (c *Console) Warn(msg string) {
	c.println(c.out, FormatWarning(msg))
}

func (c *Console) Error(msg string) {
	c.println(c.errOut, FormatError(msg))
}

func (c *Console) Blank() {
	c.println(c.out, "")
}

func (c *Console) println(w io.Writer, line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(w, line)
}

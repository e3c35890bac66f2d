package prompt

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
	ErrInterrupted = errors.New("interrupted")

	// ErrInputClosed is returned when the input stream ends before an answer was read.
	ErrInputClosed = errors.New("input closed")
)

// Provider asks the user questions and blocks until they are answered.
type Provider interface {
	// Select shows options and returns the index of the chosen one.
	Select(message string, options []string, defaultIndex int) (int, error)
	// Input asks for free text. An empty answer yields defaultValue.
	Input(message, defaultValue string) (string, error)
}

// New returns the provider suited to the given streams: a survey based
// provider when both in and out are terminals, a line based one otherwise or
// when plain is set.
func New(plain bool, in io.Reader, out, errOut io.Writer) Provider {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	interactive := inOK && outOK && isTerminal(inFile) && isTerminal(outFile)

	if interactive && !plain {
		return NewSurvey(inFile, outFile, errOut)
	}
	return NewLine(in, out, errOut, interactive)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Close releases the provider's resources when it holds any.
func Close(p Provider) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// validDefault returns defaultIndex when it addresses one of n options.
func validDefault(defaultIndex, n int) (int, bool) {
	if defaultIndex < 0 || defaultIndex >= n {
		return 0, false
	}
	return defaultIndex, true
}

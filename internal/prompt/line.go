package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"clitemplate/pkg/logging"
)

// Line prompts one line at a time. Options are listed with numbers and the
// answer may be either the number or the option text. It works with pipes
// and dumb terminals.
type Line struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	terminal bool

	mu sync.Mutex
	rl *readline.Instance
}

// NewLine creates a line provider. terminal tells readline whether in and
// out are attached to a terminal.
func NewLine(in io.Reader, out, errOut io.Writer, terminal bool) *Line {
	return &Line{
		in:       in,
		out:      out,
		errOut:   errOut,
		terminal: terminal,
	}
}

func (l *Line) Select(message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options for %q", message)
	}
	defaultIndex, hasDefault := validDefault(defaultIndex, len(options))

	fmt.Fprintf(l.out, "? %s\n", message)
	for i, opt := range options {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, opt)
	}

	prompt := fmt.Sprintf("Choose [1-%d]: ", len(options))
	if hasDefault {
		prompt = fmt.Sprintf("Choose [1-%d] (%d): ", len(options), defaultIndex+1)
	}

	for {
		answer, err := l.readLine(prompt)
		if err != nil {
			return 0, err
		}

		idx, err := resolveSelection(answer, options, defaultIndex, hasDefault)
		if err == nil {
			return idx, nil
		}
		logging.Debug("Prompt", "Rejected selection %q for %q", answer, message)
		fmt.Fprintf(l.errOut, "%s\n", err)
	}
}

func (l *Line) Input(message, defaultValue string) (string, error) {
	prompt := fmt.Sprintf("? %s ", message)
	if defaultValue != "" {
		prompt = fmt.Sprintf("? %s (%s) ", message, defaultValue)
	}

	answer, err := l.readLine(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Close releases the readline instance. The underlying reader is left open.
func (l *Line) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rl == nil {
		return nil
	}
	err := l.rl.Close()
	l.rl = nil
	return err
}

func (l *Line) readLine(prompt string) (string, error) {
	rl, err := l.instance()
	if err != nil {
		return "", err
	}

	rl.SetPrompt(prompt)
	line, err := rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	case err != nil:
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// instance lazily creates the readline instance shared by every prompt.
// readline reads ahead, so a single instance must own the input for the
// provider's whole lifetime.
func (l *Line) instance() (*readline.Instance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rl != nil {
		return l.rl, nil
	}

	terminal := l.terminal
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           readline.NewCancelableStdin(l.in),
		Stdout:          l.out,
		Stderr:          l.errOut,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		FuncIsTerminal:  func() bool { return terminal },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	l.rl = rl
	return rl, nil
}

// resolveSelection maps an answer onto an option index. The answer may be
// a 1-based number or the option text (case-insensitive). An empty answer
// selects the default when there is one.
func resolveSelection(answer string, options []string, defaultIndex int, hasDefault bool) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		if hasDefault {
			return defaultIndex, nil
		}
		return 0, fmt.Errorf("please choose one of 1-%d", len(options))
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return 0, fmt.Errorf("choice %d is out of range 1-%d", n, len(options))
		}
		return n - 1, nil
	}

	for i, opt := range options {
		if strings.EqualFold(answer, opt) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown choice %q", answer)
}

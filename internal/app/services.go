package app

import (
	"io"
	"os"

	"clitemplate/internal/cli"
	"clitemplate/internal/demo"
	"clitemplate/internal/prompt"
	"clitemplate/pkg/logging"
)

// Services holds the collaborators the commands work with.
type Services struct {
	// Sink receives every user-facing line.
	Sink cli.Sink

	// prompter asks the interactive questions. It is created on first use so
	// direct commands never touch stdin.
	prompter     prompt.Provider
	newPrompter  func() prompt.Provider
	ownsPrompter bool

	// Showcase renders the table and progress examples.
	Showcase *demo.Showcase
}

// InitializeServices builds the services for cfg. cfg.Settings must be loaded.
func InitializeServices(cfg *Config) *Services {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := cfg.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	sink := cfg.Sink
	if sink == nil {
		sink = cli.NewConsole(out, errOut)
	}

	plain := cfg.Plain || cfg.Settings.Prompt.Plain
	s := &Services{
		Sink:     sink,
		prompter: cfg.Prompter,
		newPrompter: func() prompt.Provider {
			logging.Debug("Bootstrap", "Creating prompt provider (plain=%t)", plain)
			return prompt.New(plain, in, out, errOut)
		},
		Showcase: demo.NewShowcase(renderTarget(sink, out), sink, demo.WithPacing(cfg.Settings.DemoPacing())),
	}
	return s
}

// Prompter returns the prompt provider, creating it when needed.
func (s *Services) Prompter() prompt.Provider {
	if s.prompter == nil {
		s.prompter = s.newPrompter()
		s.ownsPrompter = true
	}
	return s.prompter
}

// Close releases the prompt provider when the services created it.
func (s *Services) Close() error {
	if !s.ownsPrompter {
		return nil
	}
	return prompt.Close(s.prompter)
}

// renderTarget is where tables and progress bars are drawn: the console's
// output stream when the sink is a console, out otherwise.
func renderTarget(sink cli.Sink, out io.Writer) io.Writer {
	if c, ok := sink.(*cli.Console); ok {
		return c.Out()
	}
	return out
}

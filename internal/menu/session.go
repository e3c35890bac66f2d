package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"clitemplate/internal/cli"
	"clitemplate/internal/demo"
	"clitemplate/internal/prompt"
	"clitemplate/pkg/logging"
)

const (
	RootPrompt     = "What would you like to do?"
	NamePrompt     = "What is your name?"
	TablePrompt    = "Which table style would you like to see?"
	ProgressPrompt = "Which progress bar type would you like to see?"

	// DefaultName is greeted when no other name is configured.
	DefaultName = "World"

	farewell = "Goodbye!"
)

// State is a step of the interactive session.
type State int

const (
	MenuRoot State = iota
	HelloFlow
	VersionFlow
	TableFlow
	ProgressFlow
	ExitFlow
)

var stateNames = [...]string{
	MenuRoot:     "MenuRoot",
	HelloFlow:    "HelloFlow",
	VersionFlow:  "VersionFlow",
	TableFlow:    "TableFlow",
	ProgressFlow: "ProgressFlow",
	ExitFlow:     "ExitFlow",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// flowFor returns the state entered when action is chosen at MenuRoot.
func flowFor(action Action) State {
	switch action {
	case ActionHello:
		return HelloFlow
	case ActionVersion:
		return VersionFlow
	case ActionTable:
		return TableFlow
	case ActionProgress:
		return ProgressFlow
	case ActionExit:
		return ExitFlow
	}
	return MenuRoot
}

// Demos renders the table and progress examples.
type Demos interface {
	RunTables(ctx context.Context, style demo.TableStyle) error
	RunProgress(ctx context.Context, kind demo.ProgressKind) error
}

// Dependencies are the collaborators a Session works with.
type Dependencies struct {
	Prompter prompt.Provider
	Sink     cli.Sink
	Demos    Demos
	// Version looks up the version shown by the version flow.
	Version func() (string, error)
	// DefaultName is offered by the name prompt. Empty means DefaultName.
	DefaultName string
}

// Session is one pass through the interactive menu: a root selection
// followed by exactly one flow. Sessions are not reused.
type Session struct {
	id    string
	deps  Dependencies
	state State
}

// NewSession creates a session starting at MenuRoot.
func NewSession(deps Dependencies) *Session {
	if deps.DefaultName == "" {
		deps.DefaultName = DefaultName
	}
	return &Session{
		id:    uuid.NewString(),
		deps:  deps,
		state: MenuRoot,
	}
}

// ID identifies the session in debug logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the state the session is in, or ended in.
func (s *Session) State() State {
	return s.state
}

// Run asks for the root selection and runs the chosen flow. The first
// error from a prompt or collaborator aborts the session and is returned
// unchanged.
func (s *Session) Run(ctx context.Context) error {
	if s.state != MenuRoot {
		return fmt.Errorf("session %s already ran (state %s)", s.id, s.state)
	}

	action, err := choose(s.deps.Prompter, RootPrompt, RootChoices(), 0)
	if err != nil {
		return err
	}
	s.state = flowFor(action)
	logging.Debug("Menu", "Session %s entered %s", s.id, s.state)

	switch action {
	case ActionHello:
		return s.hello()
	case ActionVersion:
		return s.version()
	case ActionTable:
		style, err := choose(s.deps.Prompter, TablePrompt, TableChoices(), 0)
		if err != nil {
			return err
		}
		return s.deps.Demos.RunTables(ctx, style)
	case ActionProgress:
		kind, err := choose(s.deps.Prompter, ProgressPrompt, ProgressChoices(), 0)
		if err != nil {
			return err
		}
		return s.deps.Demos.RunProgress(ctx, kind)
	case ActionExit:
		s.deps.Sink.Info(farewell)
		return nil
	}
	return fmt.Errorf("unhandled action %s", action)
}

func (s *Session) hello() error {
	name, err := s.deps.Prompter.Input(NamePrompt, s.deps.DefaultName)
	if err != nil {
		return err
	}
	s.deps.Sink.Info(Greeting(name, false))
	return nil
}

func (s *Session) version() error {
	v, err := s.deps.Version()
	if err != nil {
		return err
	}
	s.deps.Sink.Info("Current version: " + v)
	return nil
}

// choose asks message with the labels of choices and returns the selected value.
func choose[T any](p prompt.Provider, message string, choices []Choice[T], defaultIndex int) (T, error) {
	var zero T
	idx, err := p.Select(message, labels(choices), defaultIndex)
	if err != nil {
		return zero, err
	}
	if idx < 0 || idx >= len(choices) {
		return zero, fmt.Errorf("selection %d out of range for %q", idx, message)
	}
	return choices[idx].Value, nil
}

// Greeting composes the greeting for name, upper-cased when capitalize is set.
func Greeting(name string, capitalize bool) string {
	greeting := fmt.Sprintf("Hello %s!", name)
	if capitalize {
		return strings.ToUpper(greeting)
	}
	return greeting
}

// ErrorMessage is the single line reported when a session fails.
func ErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "An error occurred: unknown error"
	}
	return "An error occurred: " + err.Error()
}

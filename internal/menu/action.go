package menu

import (
	"fmt"
	"strings"

	"clitemplate/internal/demo"
)

// Action is a root menu selection.
type Action int

const (
	ActionHello Action = iota
	ActionVersion
	ActionTable
	ActionProgress
	ActionExit
)

var actionNames = [...]string{
	ActionHello:    "hello",
	ActionVersion:  "version",
	ActionTable:    "table",
	ActionProgress: "progress",
	ActionExit:     "exit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction converts an action token into an Action.
func ParseAction(token string) (Action, error) {
	for i, name := range actionNames {
		if token == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q, expected one of %s", token, strings.Join(actionNames[:], ", "))
}

// Choice pairs a label shown to the user with the value it selects.
type Choice[T any] struct {
	Label string
	Value T
}

// RootChoices returns the main menu entries in display order.
func RootChoices() []Choice[Action] {
	return []Choice[Action]{
		{Label: "Say hello", Value: ActionHello},
		{Label: "Show version", Value: ActionVersion},
		{Label: "Display table examples", Value: ActionTable},
		{Label: "Show progress bar demo", Value: ActionProgress},
		{Label: "Exit", Value: ActionExit},
	}
}

// TableChoices returns the table style entries in display order.
func TableChoices() []Choice[demo.TableStyle] {
	return []Choice[demo.TableStyle]{
		{Label: "Simple table", Value: demo.TableSimple},
		{Label: "Complex table with colors", Value: demo.TableComplex},
		{Label: "Custom styled table", Value: demo.TableCustom},
		{Label: "All examples", Value: demo.TableAll},
	}
}

// ProgressChoices returns the progress bar entries in display order.
func ProgressChoices() []Choice[demo.ProgressKind] {
	return []Choice[demo.ProgressKind]{
		{Label: "Simple progress bar", Value: demo.ProgressSimple},
		{Label: "Custom styled progress bar", Value: demo.ProgressCustom},
		{Label: "Multiple progress bars", Value: demo.ProgressMulti},
		{Label: "All examples", Value: demo.ProgressAll},
	}
}

func labels[T any](choices []Choice[T]) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Label
	}
	return out
}

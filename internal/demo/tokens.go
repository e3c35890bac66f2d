package demo

import (
	"fmt"
	"strings"
)

// TableStyle selects which table example to render.
type TableStyle int

const (
	TableSimple TableStyle = iota
	TableComplex
	TableCustom
	// TableAll renders every concrete style in declaration order.
	TableAll
)

var tableStyleNames = [...]string{
	TableSimple:  "simple",
	TableComplex: "complex",
	TableCustom:  "custom",
	TableAll:     "all",
}

func (s TableStyle) String() string {
	if s < 0 || int(s) >= len(tableStyleNames) {
		return fmt.Sprintf("TableStyle(%d)", int(s))
	}
	return tableStyleNames[s]
}

// TableStyles returns every table style token in declaration order.
func TableStyles() []TableStyle {
	return []TableStyle{TableSimple, TableComplex, TableCustom, TableAll}
}

// ParseTableStyle converts a style token into a TableStyle.
func ParseTableStyle(token string) (TableStyle, error) {
	for i, name := range tableStyleNames {
		if token == name {
			return TableStyle(i), nil
		}
	}
	return 0, &UnknownTokenError{
		Kind:    "style",
		Token:   token,
		Allowed: append([]string(nil), tableStyleNames[:]...),
	}
}

// ProgressKind selects which progress bar example to render.
type ProgressKind int

const (
	ProgressSimple ProgressKind = iota
	ProgressCustom
	ProgressMulti
	// ProgressAll renders every concrete kind in declaration order.
	ProgressAll
)

var progressKindNames = [...]string{
	ProgressSimple: "simple",
	ProgressCustom: "custom",
	ProgressMulti:  "multi",
	ProgressAll:    "all",
}

func (k ProgressKind) String() string {
	if k < 0 || int(k) >= len(progressKindNames) {
		return fmt.Sprintf("ProgressKind(%d)", int(k))
	}
	return progressKindNames[k]
}

// ProgressKinds returns every progress type token in declaration order.
func ProgressKinds() []ProgressKind {
	return []ProgressKind{ProgressSimple, ProgressCustom, ProgressMulti, ProgressAll}
}

// ParseProgressKind converts a type token into a ProgressKind.
func ParseProgressKind(token string) (ProgressKind, error) {
	for i, name := range progressKindNames {
		if token == name {
			return ProgressKind(i), nil
		}
	}
	return 0, &UnknownTokenError{
		Kind:    "type",
		Token:   token,
		Allowed: append([]string(nil), progressKindNames[:]...),
	}
}

// UnknownTokenError reports a style or type token outside the closed set.
type UnknownTokenError struct {
	// Kind names the rejected option ("style" or "type").
	Kind string
	// Token is the value the user supplied.
	Token string
	// Allowed lists the accepted tokens in declaration order.
	Allowed []string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("Unknown %s: %s. Use: %s", e.Kind, e.Token, joinChoices(e.Allowed))
}

// joinChoices renders ["a","b","c"] as "a, b, or c".
func joinChoices(choices []string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	case 2:
		return choices[0] + " or " + choices[1]
	}
	return strings.Join(choices[:len(choices)-1], ", ") + ", or " + choices[len(choices)-1]
}

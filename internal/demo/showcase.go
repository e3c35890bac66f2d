package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"clitemplate/pkg/logging"
)

// Reporter receives the status lines printed around each example.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Blank()
}

// Variant is one concrete example: a status title, the renderer, and an
// optional success line printed once rendering finished.
type Variant struct {
	Title  string
	Done   string
	Render func(ctx context.Context, w io.Writer) error
}

// Pacing controls the delay between animation steps of each progress example.
type Pacing struct {
	Simple time.Duration
	Custom time.Duration
	Multi  time.Duration
}

// DefaultPacing returns the animation delays used when none are configured.
func DefaultPacing() Pacing {
	return Pacing{
		Simple: 30 * time.Millisecond,
		Custom: 40 * time.Millisecond,
		Multi:  50 * time.Millisecond,
	}
}

// Showcase renders the table and progress examples.
type Showcase struct {
	out      io.Writer
	reporter Reporter
	pacing   Pacing
	tables   []Variant
	progress []Variant
}

// Option customizes a Showcase.
type Option func(*Showcase)

// WithPacing sets the progress animation delays.
func WithPacing(p Pacing) Option {
	return func(s *Showcase) {
		s.pacing = p
	}
}

// NewShowcase creates a showcase that draws on out and reports status lines to r.
func NewShowcase(out io.Writer, r Reporter, opts ...Option) *Showcase {
	s := &Showcase{
		out:      out,
		reporter: r,
		pacing:   DefaultPacing(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tables = []Variant{
		TableSimple:  {Title: "Simple Table Example", Render: renderSimpleTable},
		TableComplex: {Title: "Complex Table with Stats", Render: renderComplexTable},
		TableCustom:  {Title: "Custom Styled Table", Render: renderCustomTable},
	}
	s.progress = []Variant{
		ProgressSimple: {Title: "Simple Progress Bar", Done: "Task completed!", Render: s.renderSimpleProgress},
		ProgressCustom: {Title: "Custom Styled Progress Bar", Done: "All tasks completed!", Render: s.renderCustomProgress},
		ProgressMulti:  {Title: "Multiple Progress Bars", Done: "All files processed!", Render: s.renderMultiProgress},
	}
	return s
}

// Tables parses token and renders the matching table example(s).
// An unknown token returns *UnknownTokenError before anything is rendered.
func (s *Showcase) Tables(ctx context.Context, token string) error {
	style, err := ParseTableStyle(token)
	if err != nil {
		return err
	}
	return s.RunTables(ctx, style)
}

// RunTables renders the examples selected by style.
func (s *Showcase) RunTables(ctx context.Context, style TableStyle) error {
	switch style {
	case TableSimple, TableComplex, TableCustom:
		return s.run(ctx, s.tables[style:style+1])
	case TableAll:
		return s.run(ctx, s.tables)
	}
	return fmt.Errorf("unsupported table style %s", style)
}

// Progress parses token and renders the matching progress example(s).
// An unknown token returns *UnknownTokenError before anything is rendered.
func (s *Showcase) Progress(ctx context.Context, token string) error {
	kind, err := ParseProgressKind(token)
	if err != nil {
		return err
	}
	return s.RunProgress(ctx, kind)
}

// RunProgress renders the examples selected by kind.
func (s *Showcase) RunProgress(ctx context.Context, kind ProgressKind) error {
	switch kind {
	case ProgressSimple, ProgressCustom, ProgressMulti:
		return s.run(ctx, s.progress[kind:kind+1])
	case ProgressAll:
		return s.run(ctx, s.progress)
	}
	return fmt.Errorf("unsupported progress type %s", kind)
}

// run renders variants in order, separated by a blank line.
func (s *Showcase) run(ctx context.Context, variants []Variant) error {
	for i, v := range variants {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			s.reporter.Blank()
		}

		logging.Debug("Showcase", "Rendering %q", v.Title)
		s.reporter.Info(v.Title)
		if err := v.Render(ctx, s.out); err != nil {
			return err
		}
		if v.Done != "" {
			s.reporter.Success(v.Done)
		}
	}
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"

	"clitemplate/internal/cli"
	"clitemplate/internal/demo"
	"clitemplate/internal/menu"
	"clitemplate/pkg/logging"
)

// DefaultName is the name greeted when none is given.
func (a *Application) DefaultName() string {
	return a.config.Settings.Hello.DefaultName
}

// Hello prints the greeting for name verbatim; an empty name is greeted as is.
func (a *Application) Hello(name string, capitalize bool) error {
	a.services.Sink.Info(menu.Greeting(name, capitalize))
	return nil
}

// RunInteractive runs one menu session. A failure is reported once through
// the sink and returned as an already reported error.
func (a *Application) RunInteractive(ctx context.Context) error {
	session := menu.NewSession(menu.Dependencies{
		Prompter:    a.services.Prompter(),
		Sink:        a.services.Sink,
		Demos:       a.services.Showcase,
		Version:     a.Version,
		DefaultName: a.config.Settings.Hello.DefaultName,
	})
	logging.Debug("Menu", "Starting session %s", session.ID())

	if err := session.Run(ctx); err != nil {
		logging.Debug("Menu", "Session %s failed in %s: %v", session.ID(), session.State(), err)
		a.services.Sink.Error(menu.ErrorMessage(err))
		return cli.NewReportedError(err)
	}
	return nil
}

// RunTables renders the table examples for style. An empty style uses the
// configured default.
func (a *Application) RunTables(ctx context.Context, style string) error {
	if style == "" {
		style = a.config.Settings.Table.DefaultStyle
	}
	return a.reportDemoError("Failed to display table", a.services.Showcase.Tables(ctx, style))
}

// RunProgress renders the progress examples for kind. An empty kind uses
// the configured default.
func (a *Application) RunProgress(ctx context.Context, kind string) error {
	if kind == "" {
		kind = a.config.Settings.Progress.DefaultType
	}
	return a.reportDemoError("Failed to show progress", a.services.Showcase.Progress(ctx, kind))
}

// reportDemoError reports err through the sink. Unknown tokens are shown
// verbatim since their message already names the valid set.
func (a *Application) reportDemoError(action string, err error) error {
	if err == nil {
		return nil
	}

	var unknown *demo.UnknownTokenError
	if errors.As(err, &unknown) {
		a.services.Sink.Error(unknown.Error())
	} else {
		a.services.Sink.Error(fmt.Sprintf("%s: %v", action, err))
	}
	return cli.NewReportedError(err)
}

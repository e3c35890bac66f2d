package demo

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable creates a table writer mirroring its output to w.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	return t
}

func renderSimpleTable(_ context.Context, w io.Writer) error {
	t := newTable(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"Name", "Email", "Role"})
	t.AppendRows([]table.Row{
		{"John Doe", "john@example.com", "Developer"},
		{"Jane Smith", "jane@example.com", "Designer"},
		{"Bob Johnson", "bob@example.com", "Manager"},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 20},
		{Number: 2, WidthMin: 30},
		{Number: 3, WidthMin: 15},
	})

	t.Render()
	return nil
}

func renderComplexTable(_ context.Context, w io.Writer) error {
	t := newTable(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	header := text.Colors{text.FgCyan}
	active := text.FgGreen.Sprint("✓ Active")
	t.AppendHeader(table.Row{
		header.Sprint("Package"),
		header.Sprint("Version"),
		header.Sprint("Downloads"),
		header.Sprint("Status"),
	})
	t.AppendRows([]table.Row{
		{"github.com/spf13/cobra", text.FgYellow.Sprint("v1.10.2"), text.FgGreen.Sprint("50M+"), active},
		{"github.com/jedib0t/go-pretty", text.FgYellow.Sprint("v6.7.8"), text.FgGreen.Sprint("10M+"), active},
		{"github.com/AlecAivazis/survey", text.FgYellow.Sprint("v2.3.7"), text.FgGreen.Sprint("30M+"), active},
		{"github.com/briandowns/spinner", text.FgYellow.Sprint("v1.23.2"), text.FgGreen.Sprint("20M+"), active},
	})
	t.AppendFooter(table.Row{"", "", text.FgHiBlack.Sprint("Total"), text.FgHiBlack.Sprint("4 packages")})

	t.Render()
	return nil
}

func renderCustomTable(_ context.Context, w io.Writer) error {
	t := newTable(w)
	style := table.StyleLight
	style.Name = "CustomCyanBorder"
	style.Color.Border = text.Colors{text.FgCyan}
	style.Color.Separator = text.Colors{text.FgCyan}
	style.Color.Header = text.Colors{text.FgWhite, text.Bold}
	style.Format.Header = text.FormatDefault
	style.Options.SeparateRows = true
	t.SetStyle(style)

	done := text.FgGreen.Sprint("✓ Done")
	pending := text.FgHiBlack.Sprint("○ Pending")
	t.AppendHeader(table.Row{"Feature", "Status", "Priority"})
	t.AppendRows([]table.Row{
		{text.FgBlue.Sprint("Table Output"), done, text.FgYellow.Sprint("High")},
		{text.FgBlue.Sprint("Progress Bars"), done, text.FgYellow.Sprint("High")},
		{text.FgBlue.Sprint("Config Support"), pending, text.FgRed.Sprint("Medium")},
		{text.FgBlue.Sprint("Auto Updates"), pending, text.FgRed.Sprint("Low")},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 30},
		{Number: 2, WidthMin: 15},
		{Number: 3, WidthMin: 15},
	})

	t.Render()
	return nil
}

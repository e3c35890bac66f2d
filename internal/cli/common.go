package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Message icons used as line prefixes in console output.
const (
	IconInfo    = "ℹ"
	IconSuccess = "✓"
	IconWarning = "⚠"
	IconError   = "✖"
)

// FormatInfo formats an informational message for CLI output
func FormatInfo(msg string) string {
	return fmt.Sprintf("%s %s", text.FgBlue.Sprint(IconInfo), msg)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("%s %s", text.FgGreen.Sprint(IconSuccess), msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return fmt.Sprintf("%s %s", text.FgYellow.Sprint(IconWarning), msg)
}

// FormatError formats an error message for CLI output
func FormatError(msg string) string {
	return fmt.Sprintf("%s %s", text.FgRed.Sprint(IconError), text.FgRed.Sprint(msg))
}

// SetColorEnabled toggles ANSI colors for everything rendered through go-pretty,
// including the table and progress demos.
func SetColorEnabled(enabled bool) {
	if enabled {
		text.EnableColors()
		return
	}
	text.DisableColors()
}

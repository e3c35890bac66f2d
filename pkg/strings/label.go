package strings

import (
	"strings"
	"unicode/utf8"
)

// MinTruncateLen is the minimum maxLen value for Truncate.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// Truncate shortens s to maxLen runes and ensures single-line output.
// Newlines and runs of whitespace collapse into single spaces, and "..." is
// appended when the value had to be cut.
//
// maxLen values below MinTruncateLen are clamped to MinTruncateLen.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// PadRight pads s with spaces up to width runes. Longer values are returned unchanged.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Label returns s normalized to a fixed-width, single-line column:
// truncated when too long and padded when too short.
func Label(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedLine struct {
	kind string
	msg  string
}

type recordingReporter struct {
	lines []recordedLine
}

func (r *recordingReporter) Info(msg string)    { r.lines = append(r.lines, recordedLine{"info", msg}) }
func (r *recordingReporter) Success(msg string) { r.lines = append(r.lines, recordedLine{"success", msg}) }
func (r *recordingReporter) Blank()             { r.lines = append(r.lines, recordedLine{"blank", ""}) }

func newTestShowcase() (*Showcase, *recordingReporter, *bytes.Buffer) {
	r := &recordingReporter{}
	out := &bytes.Buffer{}
	return NewShowcase(out, r, WithPacing(Pacing{})), r, out
}

func TestShowcase_Tables(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		lines    []recordedLine
		contains []string
		missing  []string
	}{
		{
			name:     "simple",
			token:    "simple",
			lines:    []recordedLine{{"info", "Simple Table Example"}},
			contains: []string{"John Doe", "jane@example.com", "Manager"},
			missing:  []string{"go-pretty"},
		},
		{
			name:     "complex",
			token:    "complex",
			lines:    []recordedLine{{"info", "Complex Table with Stats"}},
			contains: []string{"cobra", "go-pretty", "Active"},
			missing:  []string{"John Doe"},
		},
		{
			name:     "custom",
			token:    "custom",
			lines:    []recordedLine{{"info", "Custom Styled Table"}},
			contains: []string{"Feature", "Priority"},
		},
		{
			name:  "all",
			token: "all",
			lines: []recordedLine{
				{"info", "Simple Table Example"},
				{"blank", ""},
				{"info", "Complex Table with Stats"},
				{"blank", ""},
				{"info", "Custom Styled Table"},
			},
			contains: []string{"John Doe", "cobra", "Feature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r, out := newTestShowcase()

			require.NoError(t, s.Tables(context.Background(), tt.token))
			assert.Equal(t, tt.lines, r.lines)
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
			for _, unwanted := range tt.missing {
				assert.NotContains(t, out.String(), unwanted)
			}
		})
	}
}

func TestShowcase_TablesAllOrder(t *testing.T) {
	s, _, out := newTestShowcase()

	require.NoError(t, s.Tables(context.Background(), "all"))

	rendered := out.String()
	simple := strings.Index(rendered, "John Doe")
	complexIdx := strings.Index(rendered, "cobra")
	custom := strings.Index(rendered, "Feature")
	assert.True(t, simple < complexIdx && complexIdx < custom, "tables rendered out of order")
}

func TestShowcase_Progress(t *testing.T) {
	tests := []struct {
		name  string
		token string
		lines []recordedLine
	}{
		{
			name:  "simple",
			token: "simple",
			lines: []recordedLine{
				{"info", "Simple Progress Bar"},
				{"success", "Task completed!"},
			},
		},
		{
			name:  "custom",
			token: "custom",
			lines: []recordedLine{
				{"info", "Custom Styled Progress Bar"},
				{"success", "All tasks completed!"},
			},
		},
		{
			name:  "multi",
			token: "multi",
			lines: []recordedLine{
				{"info", "Multiple Progress Bars"},
				{"success", "All files processed!"},
			},
		},
		{
			name:  "all",
			token: "all",
			lines: []recordedLine{
				{"info", "Simple Progress Bar"},
				{"success", "Task completed!"},
				{"blank", ""},
				{"info", "Custom Styled Progress Bar"},
				{"success", "All tasks completed!"},
				{"blank", ""},
				{"info", "Multiple Progress Bars"},
				{"success", "All files processed!"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r, _ := newTestShowcase()

			require.NoError(t, s.Progress(context.Background(), tt.token))
			assert.Equal(t, tt.lines, r.lines)
		})
	}
}

func TestShowcase_UnknownTokenRendersNothing(t *testing.T) {
	s, r, out := newTestShowcase()

	err := s.Tables(context.Background(), "fancy")
	var unknown *UnknownTokenError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Unknown style: fancy. Use: simple, complex, custom, or all", err.Error())

	err = s.Progress(context.Background(), "invalid")
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Unknown type: invalid. Use: simple, custom, multi, or all", err.Error())

	assert.Empty(t, r.lines)
	assert.Zero(t, out.Len())
}

func TestShowcase_CancelledContext(t *testing.T) {
	s, r, _ := newTestShowcase()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Progress(ctx, "all")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.lines)
}

func TestShowcase_CancelDuringProgress(t *testing.T) {
	r := &recordingReporter{}
	s := NewShowcase(&bytes.Buffer{}, r, WithPacing(Pacing{Simple: time.Hour}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Progress(ctx, "simple")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []recordedLine{{"info", "Simple Progress Bar"}}, r.lines)
}

func TestCustomTaskAt(t *testing.T) {
	assert.Equal(t, "Fetching data...", customTaskAt(0, 100))
	assert.Equal(t, "Processing files...", customTaskAt(20, 100))
	assert.Equal(t, "Analyzing code...", customTaskAt(59, 100))
	assert.Equal(t, "Running tests...", customTaskAt(99, 100))
	assert.Equal(t, "Running tests...", customTaskAt(100, 100))
}

func TestPause(t *testing.T) {
	require.NoError(t, pause(context.Background(), 0))
	require.NoError(t, pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pause(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, pause(ctx, 0), context.Canceled)
}

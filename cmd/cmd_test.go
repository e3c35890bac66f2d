package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clitemplate/internal/cli"
)

const zeroPacing = `
progress:
  pacing:
    simple: 0s
    custom: 0s
    multi: 0s
`

type result struct {
	stdout string
	stderr string
	err    error
}

func (r result) exitCode() int {
	return cli.ExitCode(r.err)
}

// execute runs a fresh command tree with its own config directory.
func execute(t *testing.T, stdin, configYAML string, args ...string) result {
	t.Helper()

	dir := t.TempDir()
	if configYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configYAML), 0644))
	}

	root := newRootCmd()
	root.Version = "1.2.3"

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-path", dir, "--no-color"}, args...))

	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestHelloCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default name", args: []string{"hello"}, want: "ℹ Hello World!\n"},
		{name: "given name", args: []string{"hello", "John"}, want: "ℹ Hello John!\n"},
		{name: "empty name", args: []string{"hello", ""}, want: "ℹ Hello !\n"},
		{name: "capitalize", args: []string{"hello", "John", "-c"}, want: "ℹ HELLO JOHN!\n"},
		{name: "capitalize long flag", args: []string{"hello", "--capitalize"}, want: "ℹ HELLO WORLD!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, "", "", tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.stdout)
			assert.Empty(t, r.stderr)
		})
	}
}

func TestHelloCommand_ConfiguredDefault(t *testing.T) {
	r := execute(t, "", "hello:\n  defaultName: Gopher\n", "hello")
	require.NoError(t, r.err)
	assert.Equal(t, "ℹ Hello Gopher!\n", r.stdout)
}

func TestHelloCommand_MalformedFlag(t *testing.T) {
	r := execute(t, "", "", "hello", "--bogus")
	require.Error(t, r.err)
	assert.False(t, cli.IsReported(r.err))
	assert.Equal(t, 1, r.exitCode())

	cli.SetColorEnabled(false)
	var buf bytes.Buffer
	assert.Equal(t, 1, handleError(r.err, &buf))
	assert.Equal(t, "✖ Error: unknown flag: --bogus\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	r := execute(t, "", "", "version")
	require.NoError(t, r.err)
	assert.Equal(t, "cli-template version 1.2.3\n", r.stdout)

	r = execute(t, "", "", "--version")
	require.NoError(t, r.err)
	assert.Equal(t, "cli-template version 1.2.3\n", r.stdout)
}

func TestTableCommand(t *testing.T) {
	r := execute(t, "", "", "table")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "ℹ Simple Table Example\n"))
	assert.Contains(t, r.stdout, "John Doe")

	r = execute(t, "", "", "table", "-s", "complex")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "ℹ Complex Table with Stats\n"))
	assert.NotContains(t, r.stdout, "John Doe")
}

func TestTableCommand_All(t *testing.T) {
	r := execute(t, "", "", "table", "--style", "all")
	require.NoError(t, r.err)

	simple := strings.Index(r.stdout, "ℹ Simple Table Example")
	complexIdx := strings.Index(r.stdout, "\n\nℹ Complex Table with Stats")
	custom := strings.Index(r.stdout, "\n\nℹ Custom Styled Table")
	assert.Equal(t, 0, simple)
	assert.Greater(t, complexIdx, simple)
	assert.Greater(t, custom, complexIdx)
}

func TestTableCommand_ConfiguredDefault(t *testing.T) {
	r := execute(t, "", "table:\n  defaultStyle: custom\n", "table")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "ℹ Custom Styled Table\n"))

	r = execute(t, "", "table:\n  defaultStyle: custom\n", "table", "-s", "simple")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "ℹ Simple Table Example\n"))
}

func TestTableCommand_UnknownStyle(t *testing.T) {
	r := execute(t, "", "", "table", "-s", "fancy")
	require.Error(t, r.err)
	assert.True(t, cli.IsReported(r.err))
	assert.Equal(t, 1, r.exitCode())
	assert.Empty(t, r.stdout)
	assert.Equal(t, "✖ Unknown style: fancy. Use: simple, complex, custom, or all\n", r.stderr)
}

func TestProgressCommand(t *testing.T) {
	r := execute(t, "", zeroPacing, "progress", "-t", "all")
	require.NoError(t, r.err)

	for _, line := range []string{
		"ℹ Simple Progress Bar",
		"✓ Task completed!",
		"ℹ Custom Styled Progress Bar",
		"✓ All tasks completed!",
		"ℹ Multiple Progress Bars",
		"✓ All files processed!",
	} {
		assert.Contains(t, r.stdout, line)
	}
	assert.Less(t, strings.Index(r.stdout, "Task completed!"), strings.Index(r.stdout, "Custom Styled Progress Bar"))
}

func TestProgressCommand_UnknownType(t *testing.T) {
	r := execute(t, "", zeroPacing, "progress", "--type", "invalid")
	require.Error(t, r.err)
	assert.Equal(t, 1, r.exitCode())
	assert.Empty(t, r.stdout)
	assert.Equal(t, "✖ Unknown type: invalid. Use: simple, custom, multi, or all\n", r.stderr)
}

func TestInteractiveCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{name: "exit", stdin: "5\n", want: "ℹ Goodbye!\n"},
		{name: "hello with name", stdin: "1\nJohn\n", want: "ℹ Hello John!\n"},
		{name: "hello with default", stdin: "Say hello\n\n", want: "ℹ Hello World!\n"},
		{name: "version", stdin: "2\n", want: "ℹ Current version: 1.2.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, tt.stdin, "", "interactive")
			require.NoError(t, r.err)
			assert.Contains(t, r.stdout, tt.want)
			assert.Contains(t, r.stdout, "What would you like to do?")
		})
	}
}

func TestInteractiveCommand_Table(t *testing.T) {
	r := execute(t, "3\n1\n", "", "interactive")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Which table style would you like to see?")
	assert.Contains(t, r.stdout, "ℹ Simple Table Example\n")
}

func TestInteractiveCommand_InputClosed(t *testing.T) {
	r := execute(t, "", "", "interactive")
	require.Error(t, r.err)
	assert.True(t, cli.IsReported(r.err))
	assert.Equal(t, 1, r.exitCode())
	assert.Equal(t, "✖ An error occurred: input closed\n", r.stderr)
	assert.NotContains(t, r.stdout, "Goodbye!")
}

func TestInvalidConfig(t *testing.T) {
	r := execute(t, "", "progress:\n  defaultType: sideways\n", "progress")
	require.Error(t, r.err)
	assert.False(t, cli.IsReported(r.err))
	assert.Contains(t, r.err.Error(), "Unknown type: sideways")
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 0, handleError(nil, &buf))
	assert.Equal(t, 1, handleError(cli.NewReportedError(assert.AnError), &buf))
	assert.Empty(t, buf.String())
}

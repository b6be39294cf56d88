package argparse

import (
	"bytes"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureExitCode intercepts os.Exit calls and returns the exit code, or -1 if fn returned
// without exiting.
func captureExitCode(t *testing.T, fn func()) int {
	t.Helper()

	exitCh := make(chan int, 1)
	original := osExit
	t.Cleanup(func() { osExit = original })

	osExit = func(code int) {
		exitCh <- code
		runtime.Goexit()
	}

	go func() {
		fn()
		exitCh <- -1
	}()

	select {
	case code := <-exitCh:
		return code
	case <-time.After(5 * time.Second):
		t.Fatal("test timed out waiting for exit")
		return -1
	}
}

// The tests below swap the package-level osExit and must not run in parallel.

func TestParseOrExit_ErrorShowsUsage(t *testing.T) {
	var stderr bytes.Buffer
	p := newTestParser(t, "a")
	code := captureExitCode(t, func() {
		_ = ParseOrExit(p, &ExitOptions{HelpOnError: true, Stderr: &stderr})
	})
	require.Equal(t, 1, code)
	out := stderr.String()
	assert.Contains(t, out, "usage:\n  prog [{-h|--help}]")
	assert.NotContains(t, out, "Options")
	assert.Contains(t, out, "\nerror: argument \"dst\": insufficient number of arguments")
}

func TestParseOrExit_ErrorWithHelp(t *testing.T) {
	var stderr bytes.Buffer
	p := newTestParser(t, "a", "--help")
	code := captureExitCode(t, func() {
		_ = ParseOrExit(p, &ExitOptions{HelpOnError: true, Stderr: &stderr})
	})
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "\nOptions\n")
	assert.NotContains(t, stderr.String(), "error:")
}

func TestParseOrExit_ShowHelpAndExit(t *testing.T) {
	var stderr bytes.Buffer
	p := newTestParser(t, "a", "b", "-h")
	code := captureExitCode(t, func() {
		_ = ParseOrExit(p, &ExitOptions{ShowHelpAndExit: true, Stderr: &stderr})
	})
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "\nArguments\n")
}

func TestParseOrExit_Success(t *testing.T) {
	var (
		stderr bytes.Buffer
		err    error
	)
	p := newTestParser(t, "a", "b")
	code := captureExitCode(t, func() {
		err = ParseOrExit(p, &ExitOptions{HelpOnError: true, ShowHelpAndExit: true, Stderr: &stderr})
	})
	require.Equal(t, -1, code)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Equal(t, "a", GetOr(p, "src", ""))
}

func TestParseOrExit_ReturnsErrors(t *testing.T) {
	var (
		stderr bytes.Buffer
		err    error
	)
	p := newTestParser(t, "-n", "x", "a", "b")
	code := captureExitCode(t, func() {
		err = ParseOrExit(p, &ExitOptions{Stderr: &stderr})
	})
	require.Equal(t, -1, code)
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Empty(t, stderr.String())
}

func TestParseOrExit_HelpIgnoredWhenDisabled(t *testing.T) {
	var err error
	p := newTestParser(t, "a", "b", "--help")
	code := captureExitCode(t, func() {
		err = ParseOrExit(p, &ExitOptions{HelpOnError: true, Stderr: &bytes.Buffer{}})
	})
	require.Equal(t, -1, code)
	require.NoError(t, err)
	assert.True(t, GetOr(p, "help", false))
}

func TestParseOrExit_HelpFallsBackToUsage(t *testing.T) {
	var stderr bytes.Buffer
	p := New([]string{"-h"}, WithProgramName("prog"))
	require.NoError(t, p.AddOption([]string{"--enable"}, "enable", Bool, 1, "turn features on"))
	code := captureExitCode(t, func() {
		_ = ParseOrExit(p, &ExitOptions{HelpOnError: true, ShowHelpAndExit: true, Stderr: &stderr})
	})
	require.Equal(t, 0, code)
	out := stderr.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "usage:\n  prog [{-h|--help}] [--enable enable]")
	assert.Contains(t, out, `error: option "enable": type mismatch`)
}

func TestParseOrExit_ErrorWithHelpFallsBackToUsage(t *testing.T) {
	var stderr bytes.Buffer
	p := New([]string{"--help"}, WithProgramName("prog"))
	require.NoError(t, p.AddOption([]string{"--enable"}, "enable", Bool, 1, ""))
	require.NoError(t, p.AddArgument("file", String, 1, ""))
	code := captureExitCode(t, func() {
		_ = ParseOrExit(p, &ExitOptions{HelpOnError: true, Stderr: &stderr})
	})
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "usage:\n  prog ")
	assert.Contains(t, stderr.String(), `error: option "enable"`)
	assert.NotContains(t, stderr.String(), "insufficient number of arguments")
}

func TestErrorLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "error:", errorLabel(&bytes.Buffer{}))
}

func TestCheckAndSetExitOptions(t *testing.T) {
	t.Parallel()
	opts := checkAndSetExitOptions(nil)
	assert.True(t, opts.HelpOnError)
	assert.True(t, opts.ShowHelpAndExit)
	assert.NotNil(t, opts.Stderr)

	opts = checkAndSetExitOptions(&ExitOptions{})
	assert.False(t, opts.HelpOnError)
	assert.False(t, opts.ShowHelpAndExit)
}

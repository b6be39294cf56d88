package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// osExit is a variable that can be mocked in tests.
var osExit = os.Exit

// ExitOptions controls how [ParseOrExit] reacts to help requests and parse failures.
type ExitOptions struct {
	// HelpOnError prints the short usage line and the error, then exits with status 1, when
	// parsing fails. If the help switch was given, the full help is printed and the exit status is
	// 0 instead.
	HelpOnError bool
	// ShowHelpAndExit prints the full help and exits with status 0 when parsing succeeds and the
	// help switch was given.
	ShowHelpAndExit bool

	// Stderr receives the help and error output. Defaults to [os.Stderr].
	Stderr io.Writer
}

// ParseOrExit parses p and terminates the process on help requests or failures as configured by
// opts. A nil opts enables both HelpOnError and ShowHelpAndExit.
//
// Typical use:
//
//	p := argparse.New(os.Args[1:], argparse.WithDescription("copy files"))
//	// register arguments...
//	if err := argparse.ParseOrExit(p, nil); err != nil {
//	    // only reached when HelpOnError is disabled
//	}
//
// Errors are returned only when the matching option is disabled.
func ParseOrExit(p *Parser, opts *ExitOptions) error {
	opts = checkAndSetExitOptions(opts)
	err := p.Parse()
	if err != nil {
		if !opts.HelpOnError {
			return err
		}
		var pe *ParseError
		if errors.As(err, &pe) && pe.HelpRequested {
			printHelp(p, opts.Stderr, false)
			osExit(0)
			return nil
		}
		printHelp(p, opts.Stderr, true)
		fmt.Fprintf(opts.Stderr, "\n%s %v\n", errorLabel(opts.Stderr), err)
		osExit(1)
		return err
	}
	if opts.ShowHelpAndExit && GetOr(p, helpName, false) {
		printHelp(p, opts.Stderr, false)
		osExit(0)
	}
	return nil
}

// printHelp prints the help for p to w. If the argument explanation cannot be rendered, the usage
// line is printed instead, followed by the reason.
func printHelp(p *Parser, w io.Writer, simple bool) {
	err := p.ShowHelp(w, simple)
	if err == nil || simple {
		return
	}
	if p.ShowHelp(w, true) == nil {
		fmt.Fprintf(w, "\n%s %v\n", errorLabel(w), err)
	}
}

func checkAndSetExitOptions(opts *ExitOptions) *ExitOptions {
	if opts == nil {
		opts = &ExitOptions{
			HelpOnError:     true,
			ShowHelpAndExit: true,
		}
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return opts
}

// errorLabel returns "error:", in red when w is a terminal.
func errorLabel(w io.Writer) string {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint("error:")
}

package argparse

import (
	"fmt"
	"io"
	"strings"
)

// Format writes the single usage line: the program name, then switches, options with a fixed
// number of values, positional arguments in registration order and finally options with a
// variable number of values.
func (p *Parser) Format(w io.Writer) error {
	var b strings.Builder
	b.WriteString(p.program + " ")

	var args []Argument
	for _, o := range p.optionals {
		if o.arity == 0 {
			args = append(args, o)
		}
	}
	for _, o := range p.optionals {
		if o.arity > 0 {
			args = append(args, o)
		}
	}
	for _, pos := range p.positionals {
		args = append(args, pos)
	}
	for _, o := range p.optionals {
		if o.arity == Variable {
			args = append(args, o)
		}
	}
	for _, arg := range args {
		if err := arg.Format(&b); err != nil {
			return err
		}
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Explain writes the help entry of every argument, positional arguments first.
func (p *Parser) Explain(w io.Writer) error {
	var b strings.Builder
	if len(p.positionals) > 0 {
		b.WriteString("\nArguments\n")
		for _, pos := range p.positionals {
			if err := pos.Explain(&b); err != nil {
				return err
			}
		}
	}
	if len(p.optionals) > 0 {
		b.WriteString("\nOptions\n")
		for _, o := range p.optionals {
			if err := o.Explain(&b); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ShowHelp writes the description, the usage line and, unless simple is set, the help entry of
// every argument.
func (p *Parser) ShowHelp(w io.Writer, simple bool) error {
	var b strings.Builder
	if p.description != "" {
		b.WriteString(p.description + "\n\n")
	}
	b.WriteString("usage:\n  ")
	if err := p.Format(&b); err != nil {
		return err
	}
	if !simple {
		if err := p.Explain(&b); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayStatus writes the input tokens, the registered arguments and the parsed values. It is
// meant for debugging argument definitions.
func (p *Parser) DisplayStatus(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# input arguments:")
	for _, arg := range p.args {
		b.WriteString(" " + arg)
	}
	b.WriteString("\n# defined options: ")
	for _, o := range p.optionals {
		if err := o.Format(&b); err != nil {
			return err
		}
	}
	b.WriteString("\n# named arguments: ")
	for _, pos := range p.positionals {
		if err := pos.Format(&b); err != nil {
			return err
		}
	}
	b.WriteString("\n# parsed arguments:\n")
	if p.results != nil {
		for pair := p.results.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "    %s:", pair.Key)
			for _, v := range pair.Value {
				b.WriteString(" " + v.String())
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

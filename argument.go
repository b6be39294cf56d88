package argparse

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pressly/argparse/internal/textutil"
)

// Arity is the number of value tokens an argument consumes.
type Arity int

// Variable makes an argument consume tokens greedily instead of a fixed count.
const Variable Arity = -1

func (a Arity) String() string {
	if a == Variable {
		return "variable"
	}
	return strconv.Itoa(int(a))
}

const (
	helpWidth  = 80
	helpIndent = 8
)

// Argument is a single argument definition registered with a [Parser]. The two implementations
// are [*Positional] and [*Optional].
type Argument interface {
	// Name is the key the parsed values are stored under.
	Name() string
	Type() Type
	Arity() Arity
	Help() string

	// Matches reports whether token identifies this argument.
	Matches(token string) bool
	// Format writes the fragment of the usage line describing the argument.
	Format(w io.Writer) error
	// Explain writes the multi-line help entry for the argument.
	Explain(w io.Writer) error
}

type base struct {
	name  string
	typ   Type
	arity Arity
	help  string
}

func (b *base) Name() string { return b.name }
func (b *base) Type() Type   { return b.typ }
func (b *base) Arity() Arity { return b.arity }
func (b *base) Help() string { return b.help }

func (b *base) validate() error {
	if b.name == "" {
		return invalidSpec("argument has no name")
	}
	if b.typ <= Null || b.typ > String {
		return invalidSpec("argument %q: type %s is not allowed", b.name, b.typ)
	}
	if b.arity < Variable {
		return invalidSpec("argument %q: arity %d is not allowed", b.name, int(b.arity))
	}
	return nil
}

// Positional is an argument identified by its position among the tokens that no optional
// argument consumed.
type Positional struct {
	base
}

// NewPositional returns a positional argument definition. The arity must be at least 1 or
// [Variable].
func NewPositional(name string, typ Type, arity Arity, help string) (*Positional, error) {
	p := &Positional{base{name: name, typ: typ, arity: arity, help: help}}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if arity == 0 {
		return nil, invalidSpec("positional argument %q: arity 0 is only allowed for bool options", name)
	}
	return p, nil
}

func (p *Positional) Matches(token string) bool {
	return p.name == token
}

func (p *Positional) Format(w io.Writer) error {
	var b strings.Builder
	b.WriteString(valueNames(p.name, p.arity, false))
	b.WriteString(" ")
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Positional) Explain(w io.Writer) error {
	label, err := p.typ.Describe()
	if err != nil {
		return fmt.Errorf("argument %q: %w", p.name, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %s [%s", p.name, label)
	for i := 1; i < int(p.arity); i++ {
		b.WriteString("," + label)
	}
	if p.arity == Variable {
		b.WriteString(",...")
	}
	b.WriteString("]:\n")
	writeHelp(&b, p.help)
	_, err = io.WriteString(w, b.String())
	return err
}

// Optional is an argument triggered by one of its directive strings, such as "-v" or "--verbose".
//
// A variable-arity optional consumes tokens until the stream ends or a token equal to any
// registered directive is reached. There is no escaping: a value that happens to equal a directive
// ends the run and is parsed as that directive.
type Optional struct {
	base
	directives []string
}

// NewOptional returns an optional argument definition. An arity of 0 makes a switch and requires
// typ to be [Bool].
func NewOptional(directives []string, name string, typ Type, arity Arity, help string) (*Optional, error) {
	o := &Optional{
		base:       base{name: name, typ: typ, arity: arity, help: help},
		directives: slices.Clone(directives),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if arity == 0 && typ != Bool {
		return nil, invalidSpec("option %q: arity 0 requires type bool, got %s", name, typ)
	}
	if len(directives) == 0 {
		return nil, invalidSpec("option %q has no directives", name)
	}
	for _, d := range directives {
		if d == "" {
			return nil, invalidSpec("option %q has an empty directive", name)
		}
	}
	return o, nil
}

// Directives returns a copy of the directive strings.
func (o *Optional) Directives() []string {
	return slices.Clone(o.directives)
}

func (o *Optional) Matches(token string) bool {
	return slices.Contains(o.directives, token)
}

func (o *Optional) Format(w io.Writer) error {
	var b strings.Builder
	b.WriteString("[")
	if len(o.directives) > 1 {
		b.WriteString("{" + strings.Join(o.directives, "|") + "}")
	} else {
		b.WriteString(o.directives[0])
	}
	if o.arity != 0 {
		b.WriteString(valueNames(o.name, o.arity, true))
	}
	b.WriteString("] ")
	_, err := io.WriteString(w, b.String())
	return err
}

func (o *Optional) Explain(w io.Writer) error {
	var b strings.Builder
	b.WriteString("  " + strings.Join(o.directives, "|"))
	if o.arity != 0 {
		label, err := o.typ.Describe()
		if err != nil {
			return fmt.Errorf("option %q: %w", o.name, err)
		}
		switch {
		case o.arity == Variable:
			fmt.Fprintf(&b, " [%s:%s,...]", o.name, label)
		case o.arity == 1:
			fmt.Fprintf(&b, " [%s:%s]", o.name, label)
		default:
			parts := make([]string, 0, int(o.arity))
			for i := 0; i < int(o.arity); i++ {
				parts = append(parts, fmt.Sprintf("%s(%d):%s", o.name, i, label))
			}
			b.WriteString(" [" + strings.Join(parts, ",") + "]")
		}
	}
	b.WriteString(":\n")
	writeHelp(&b, o.help)
	_, err := io.WriteString(w, b.String())
	return err
}

// valueNames renders the value placeholders of an argument: "name", "name(0) name(1)" or
// "name...". Options get a leading space before each placeholder.
func valueNames(name string, arity Arity, leading bool) string {
	sep := ""
	if leading {
		sep = " "
	}
	switch {
	case arity == Variable:
		return sep + name + "..."
	case arity == 1:
		return sep + name
	case arity > 1:
		parts := make([]string, 0, int(arity))
		for i := 0; i < int(arity); i++ {
			parts = append(parts, fmt.Sprintf("%s(%d)", name, i))
		}
		return sep + strings.Join(parts, " ")
	}
	return ""
}

func writeHelp(b *strings.Builder, help string) {
	if help == "" {
		return
	}
	indent := strings.Repeat(" ", helpIndent)
	for _, line := range textutil.Wrap(help, helpWidth-helpIndent) {
		b.WriteString(indent + line + "\n")
	}
}

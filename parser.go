package argparse

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/shlex"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const helpName = "help"

type state int

const (
	stateUnparsed state = iota
	stateParsed
)

// Parser matches a list of tokens against registered argument definitions.
//
// Optional arguments are registered with [Parser.AddOption] or [Parser.AddFlag], positional
// arguments with [Parser.AddArgument]. After a successful [Parser.Parse] the values are read with
// [Get], [GetOr], [GetAll] and [GetAllOr].
//
// A Parser is not safe for concurrent use.
type Parser struct {
	program     string
	description string
	args        []string
	logger      *slog.Logger

	optionals   []*Optional
	positionals []*Positional
	varargs     bool

	state   state
	results *orderedmap.OrderedMap[string, []Value]
	extra   []string
}

// Option configures a [Parser].
type Option func(*config)

type config struct {
	program     string
	description string
	noHelp      bool
	logger      *slog.Logger
}

// WithDescription sets the program description printed at the top of the help message.
func WithDescription(desc string) Option {
	return func(c *config) {
		c.description = desc
	}
}

// WithProgramName sets the program name printed at the start of the usage line. Defaults to the
// base name of os.Args[0].
func WithProgramName(name string) Option {
	return func(c *config) {
		c.program = name
	}
}

// WithoutHelp disables the implicit "-h"/"--help" switch registered under the name "help".
func WithoutHelp() Option {
	return func(c *config) {
		c.noHelp = true
	}
}

// WithLogger sets a logger that receives a debug record for every argument matched during
// parsing. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New returns a Parser for args, typically os.Args[1:]. Unless [WithoutHelp] is given, a bool
// switch named "help" with the directives "-h" and "--help" is registered first.
func New(args []string, opts ...Option) *Parser {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.program == "" && len(os.Args) > 0 {
		cfg.program = filepath.Base(os.Args[0])
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	p := &Parser{
		program:     cfg.program,
		description: cfg.description,
		args:        slices.Clone(args),
		logger:      cfg.logger,
	}
	if !cfg.noHelp {
		help, _ := NewOptional([]string{"-h", "--help"}, helpName, Bool, 0, "Show a help message")
		p.optionals = append(p.optionals, help)
	}
	return p
}

// NewFromString is like [New] but takes the tokens as a single line, split with shell quoting
// rules.
func NewFromString(line string, opts ...Option) (*Parser, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}
	return New(args, opts...), nil
}

// SetDescription replaces the program description.
func (p *Parser) SetDescription(desc string) {
	p.description = desc
}

// Args returns a copy of the tokens the parser was created with.
func (p *Parser) Args() []string {
	return slices.Clone(p.args)
}

// AddArgument registers a positional argument. Positional arguments are filled in registration
// order. Once an argument with [Variable] arity is registered, no further positional arguments can
// be added.
func (p *Parser) AddArgument(name string, typ Type, arity Arity, help string) error {
	pos, err := NewPositional(name, typ, arity, help)
	if err != nil {
		return err
	}
	return p.Add(pos)
}

// AddOption registers an optional argument triggered by any of directives.
func (p *Parser) AddOption(directives []string, name string, typ Type, arity Arity, help string) error {
	opt, err := NewOptional(directives, name, typ, arity, help)
	if err != nil {
		return err
	}
	return p.Add(opt)
}

// AddFlag registers a bool switch that takes no values.
func (p *Parser) AddFlag(directives []string, name, help string) error {
	return p.AddOption(directives, name, Bool, 0, help)
}

// Add registers an argument built with [NewPositional] or [NewOptional].
func (p *Parser) Add(arg Argument) error {
	if arg == nil {
		return invalidSpec("argument is nil")
	}
	if err := p.checkName(arg.Name()); err != nil {
		return err
	}
	switch a := arg.(type) {
	case *Positional:
		if p.varargs {
			return invalidSpec("cannot add %q after variable-arity argument", a.name)
		}
		if a.arity == Variable {
			p.varargs = true
		}
		p.positionals = append(p.positionals, a)
	case *Optional:
		for _, d := range a.directives {
			if other := p.matchOptional(d); other != nil {
				return invalidSpec("directive %q of %q is already used by %q", d, a.name, other.name)
			}
		}
		p.optionals = append(p.optionals, a)
	default:
		return invalidSpec("unsupported argument type %T", arg)
	}
	p.reset()
	return nil
}

func (p *Parser) checkName(name string) error {
	if name == helpName {
		return invalidSpec("the name %q is predefined", helpName)
	}
	for _, o := range p.optionals {
		if o.name == name {
			return invalidSpec("argument %q is already defined", name)
		}
	}
	for _, pos := range p.positionals {
		if pos.Matches(name) {
			return invalidSpec("argument %q is already defined", name)
		}
	}
	return nil
}

func (p *Parser) reset() {
	p.state = stateUnparsed
	p.results = nil
	p.extra = nil
}

// Parse matches the tokens against the registered arguments.
//
// Optional arguments are extracted first, wherever they appear. A token equal to a directive
// consumes the arity of its option from the following tokens; a [Variable] option consumes tokens
// until the end or the next token that is a registered directive. The tokens left over are then
// assigned to positional arguments in registration order. Tokens left after the last positional
// argument are available from [Parser.Extra].
//
// When the same directive appears more than once, every occurrence consumes and validates its
// values, but only the first occurrence is stored.
//
// On failure the parser holds no results and the returned error is a [*ParseError].
func (p *Parser) Parse() error {
	p.reset()
	results := orderedmap.New[string, []Value]()

	remaining, err := p.extractOptionals(results)
	if err == nil {
		p.extra, err = p.assignPositionals(results, remaining)
	}
	if err != nil {
		err.HelpRequested = p.helpInArgs()
		p.extra = nil
		p.logger.Debug("parse failed", slog.String("argument", err.Argument), slog.Any("error", err.Err))
		return err
	}
	p.results = results
	p.state = stateParsed
	return nil
}

// helpInArgs reports whether a help directive appears among the tokens, including tokens after
// the point where parsing stopped. Tokens taken as values by a fixed-arity option are skipped.
func (p *Parser) helpInArgs() bool {
	for i := 0; i < len(p.args); i++ {
		o := p.matchOptional(p.args[i])
		switch {
		case o == nil:
		case o.name == helpName:
			return true
		case o.arity > 0:
			i += int(o.arity)
		}
	}
	return false
}

func (p *Parser) matchOptional(token string) *Optional {
	for _, o := range p.optionals {
		if o.Matches(token) {
			return o
		}
	}
	return nil
}

func (p *Parser) extractOptionals(results *orderedmap.OrderedMap[string, []Value]) ([]string, *ParseError) {
	var remaining []string
	args := p.args
	i := 0
	for i < len(args) {
		token := args[i]
		o := p.matchOptional(token)
		if o == nil {
			remaining = append(remaining, token)
			i++
			continue
		}
		i++

		vals := []Value{}
		switch {
		case o.arity == 0:
			vals = append(vals, Value{typ: Bool, raw: "true"})
		case o.arity == Variable:
			for i < len(args) && p.matchOptional(args[i]) == nil {
				v, err := NewValue(o.typ, args[i])
				if err != nil {
					return nil, &ParseError{Argument: o.name, Token: args[i], Err: err}
				}
				vals = append(vals, v)
				i++
			}
		default:
			for n := 0; n < int(o.arity); n++ {
				if i >= len(args) {
					return nil, &ParseError{
						Argument: o.name,
						Token:    token,
						Err:      fmt.Errorf("%w: %s expects %d value(s), got %d", ErrInsufficientArguments, token, int(o.arity), n),
					}
				}
				v, err := NewValue(o.typ, args[i])
				if err != nil {
					return nil, &ParseError{Argument: o.name, Token: args[i], Err: err}
				}
				vals = append(vals, v)
				i++
			}
		}
		p.logger.Debug("matched option",
			slog.String("name", o.name),
			slog.String("directive", token),
			slog.Int("values", len(vals)),
		)
		store(results, o.name, vals)
	}
	return remaining, nil
}

func (p *Parser) assignPositionals(results *orderedmap.OrderedMap[string, []Value], remaining []string) ([]string, *ParseError) {
	j := 0
	for _, pos := range p.positionals {
		if j >= len(remaining) {
			return nil, &ParseError{
				Argument: pos.name,
				Err:      fmt.Errorf("%w: missing value for %s", ErrInsufficientArguments, pos.name),
			}
		}
		var vals []Value
		if pos.arity == Variable {
			for ; j < len(remaining); j++ {
				v, err := NewValue(pos.typ, remaining[j])
				if err != nil {
					return nil, &ParseError{Argument: pos.name, Token: remaining[j], Err: err}
				}
				vals = append(vals, v)
			}
		} else {
			for n := 0; n < int(pos.arity); n++ {
				if j >= len(remaining) {
					return nil, &ParseError{
						Argument: pos.name,
						Err:      fmt.Errorf("%w: %s expects %d value(s), got %d", ErrInsufficientArguments, pos.name, int(pos.arity), n),
					}
				}
				v, err := NewValue(pos.typ, remaining[j])
				if err != nil {
					return nil, &ParseError{Argument: pos.name, Token: remaining[j], Err: err}
				}
				vals = append(vals, v)
				j++
			}
		}
		p.logger.Debug("matched argument", slog.String("name", pos.name), slog.Int("values", len(vals)))
		store(results, pos.name, vals)
	}
	return slices.Clone(remaining[j:]), nil
}

func store(results *orderedmap.OrderedMap[string, []Value], name string, vals []Value) {
	if _, ok := results.Get(name); ok {
		return
	}
	results.Set(name, vals)
}

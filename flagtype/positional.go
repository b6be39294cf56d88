package flagtype

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pressly/argparse"
)

type positionalsValue struct {
	args []*argparse.Positional
}

// Positionals returns a [flag.Value] that collects positional argument definitions of the form
// "name:type[:arity]". The arity defaults to 1. The flag can be repeated; definitions keep the
// order they were given in.
//
// Get returns []*argparse.Positional.
func Positionals() flag.Value {
	return &positionalsValue{}
}

func (v *positionalsValue) String() string {
	parts := make([]string, 0, len(v.args))
	for _, a := range v.args {
		parts = append(parts, a.Name()+":"+typeName(a.Type())+":"+formatArity(a.Arity()))
	}
	return strings.Join(parts, ",")
}

func (v *positionalsValue) Set(s string) error {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("invalid positional %q, want name:type[:arity]", s)
	}
	typ, err := ParseType(fields[1])
	if err != nil {
		return fmt.Errorf("positional %q: %w", s, err)
	}
	arity := argparse.Arity(1)
	if len(fields) == 3 {
		if arity, err = ParseArity(fields[2]); err != nil {
			return fmt.Errorf("positional %q: %w", s, err)
		}
	}
	pos, err := argparse.NewPositional(fields[0], typ, arity, "")
	if err != nil {
		return err
	}
	v.args = append(v.args, pos)
	return nil
}

func (v *positionalsValue) Get() any {
	return v.args
}

package flagtype

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pressly/argparse"
)

type optionsValue struct {
	args []*argparse.Optional
}

// Options returns a [flag.Value] that collects optional argument definitions of the form
// "directives:name[:type[:arity]]", like "-n,--count:count:int". Without a type the option is a
// bool switch; with a type the arity defaults to 1. The flag can be repeated.
//
// Get returns []*argparse.Optional.
func Options() flag.Value {
	return &optionsValue{}
}

func (v *optionsValue) String() string {
	parts := make([]string, 0, len(v.args))
	for _, a := range v.args {
		parts = append(parts, strings.Join(a.Directives(), ",")+":"+a.Name()+":"+typeName(a.Type())+":"+formatArity(a.Arity()))
	}
	return strings.Join(parts, " ")
}

func (v *optionsValue) Set(s string) error {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 4 {
		return fmt.Errorf("invalid option %q, want directives:name[:type[:arity]]", s)
	}
	directives := strings.Split(fields[0], ",")
	typ, arity := argparse.Bool, argparse.Arity(0)
	if len(fields) >= 3 {
		var err error
		if typ, err = ParseType(fields[2]); err != nil {
			return fmt.Errorf("option %q: %w", s, err)
		}
		arity = 1
		if len(fields) == 4 {
			if arity, err = ParseArity(fields[3]); err != nil {
				return fmt.Errorf("option %q: %w", s, err)
			}
		}
	}
	opt, err := argparse.NewOptional(directives, fields[1], typ, arity, "")
	if err != nil {
		return err
	}
	v.args = append(v.args, opt)
	return nil
}

func (v *optionsValue) Get() any {
	return v.args
}

package argparse

import (
	"fmt"
	"slices"
)

// Get returns the first value parsed for name, converted to T.
//
// It fails with [ErrNotReady] before a successful [Parser.Parse], with [ErrNotFound] if nothing was
// parsed for name, and with [ErrTypeMismatch] if the value cannot be converted to T.
func Get[T Scalar](p *Parser, name string) (T, error) {
	var zero T
	vals, err := p.lookup(name)
	if err != nil {
		return zero, err
	}
	if len(vals) == 0 {
		return zero, fmt.Errorf("%w: %q has no values", ErrNotFound, name)
	}
	v, err := Convert[T](vals[0])
	if err != nil {
		return zero, fmt.Errorf("argument %q: %w", name, err)
	}
	return v, nil
}

// GetOr is like [Get] but returns def instead of an error.
//
//	verbose := argparse.GetOr(p, "verbose", false)
func GetOr[T Scalar](p *Parser, name string, def T) T {
	v, err := Get[T](p, name)
	if err != nil {
		return def
	}
	return v
}

// GetAll returns every value parsed for name, in the order the tokens were consumed.
func GetAll[T Scalar](p *Parser, name string) ([]T, error) {
	vals, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(vals))
	for _, val := range vals {
		v, err := Convert[T](val)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// GetAllOr is like [GetAll] but returns a slice holding only def instead of an error.
func GetAllOr[T Scalar](p *Parser, name string, def T) []T {
	v, err := GetAll[T](p, name)
	if err != nil {
		return []T{def}
	}
	return v
}

// Contains reports whether values were parsed for name. Unlike the typed accessors it does not
// fail before parsing; it simply reports false.
func (p *Parser) Contains(name string) bool {
	if p.results == nil {
		return false
	}
	_, ok := p.results.Get(name)
	return ok
}

// Values returns a copy of the raw values parsed for name.
func (p *Parser) Values(name string) ([]Value, bool) {
	if p.results == nil {
		return nil, false
	}
	vals, ok := p.results.Get(name)
	return slices.Clone(vals), ok
}

// Results returns a copy of every parsed entry. It returns nil before a successful parse.
func (p *Parser) Results() map[string][]Value {
	if p.results == nil {
		return nil
	}
	out := make(map[string][]Value, p.results.Len())
	for pair := p.results.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = slices.Clone(pair.Value)
	}
	return out
}

// Extra returns the tokens that were left over after every positional argument was filled.
func (p *Parser) Extra() []string {
	return slices.Clone(p.extra)
}

func (p *Parser) lookup(name string) ([]Value, error) {
	if p.state != stateParsed {
		return nil, ErrNotReady
	}
	vals, ok := p.results.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return vals, nil
}

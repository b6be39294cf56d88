package flagtype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pressly/argparse"
)

// ParseType parses a type name.
func ParseType(s string) (argparse.Type, error) {
	switch strings.ToLower(s) {
	case "bool", "boolean":
		return argparse.Bool, nil
	case "int", "integer":
		return argparse.Integer, nil
	case "float":
		return argparse.Float, nil
	case "string", "str":
		return argparse.String, nil
	default:
		return argparse.Null, fmt.Errorf("unknown type %q, must be one of: bool, int, float, string", s)
	}
}

// ParseArity parses a fixed arity or "*"/"..." for [argparse.Variable].
func ParseArity(s string) (argparse.Arity, error) {
	if s == "*" || s == "..." {
		return argparse.Variable, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid arity %q, must be a non-negative number or *", s)
	}
	return argparse.Arity(n), nil
}

func formatArity(a argparse.Arity) string {
	if a == argparse.Variable {
		return "*"
	}
	return a.String()
}

func typeName(t argparse.Type) string {
	if t == argparse.Integer {
		return "int"
	}
	return t.String()
}

// Package flagtype provides [flag.Value] implementations that build argparse argument definitions
// from compact strings, so a tool can describe a parser on its own command line.
//
// All types implement [flag.Getter]. The following are available:
//   - [Positionals] - repeatable, collects "name:type[:arity]" into []*argparse.Positional
//   - [Options] - repeatable, collects "directives:name[:type[:arity]]" into []*argparse.Optional
//
// Types are "bool", "int"/"integer", "float" and "string". An arity is a number, or "*" (also
// "...") for a variable number of values. Directives are separated by commas.
//
// Example registration:
//
//	fset := flag.NewFlagSet("argcheck", flag.ContinueOnError)
//	fset.Var(flagtype.Positionals(), "pos", "positional argument (repeatable)")
//	fset.Var(flagtype.Options(), "opt", "optional argument (repeatable)")
//
// Example definitions:
//
//	-pos src:string -pos files:string:*
//	-opt -v,--verbose:verbose -opt -n:count:int -opt --size:size:float:2
package flagtype

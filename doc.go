// Package argparse parses command-line tokens against a declarative set of positional and optional
// arguments and exposes the results through typed accessors.
//
// Arguments are registered on a [Parser] before calling [Parser.Parse]:
//
//	p := argparse.New(os.Args[1:], argparse.WithDescription("resize images"))
//	p.AddFlag([]string{"-v", "--verbose"}, "verbose", "print every file")
//	p.AddOption([]string{"-q", "--quality"}, "quality", argparse.Integer, 1, "jpeg quality")
//	p.AddOption([]string{"--tag"}, "tag", argparse.String, argparse.Variable, "tags to add")
//	p.AddArgument("width", argparse.Integer, 1, "target width")
//	p.AddArgument("files", argparse.String, argparse.Variable, "input files")
//	if err := p.Parse(); err != nil {
//	    return err
//	}
//	width, _ := argparse.Get[int](p, "width")
//	files, _ := argparse.GetAll[string](p, "files")
//	quality := argparse.GetOr(p, "quality", 85)
//
// Optional arguments may appear anywhere among the positional ones. They are removed from the
// token stream first; the remaining tokens are then assigned to positional arguments in
// registration order.
//
// Every token is validated against the declared [Type] as it is consumed, so a successful parse
// only holds convertible values. [ParseOrExit] layers the usual "print help and exit" behavior on
// top of [Parser.Parse].
package argparse

// Package optparse is a table driven command line option parser.
//
// A table is a slice of Option entries. Each entry names a prefix ("",
// "-" or "--"), a kind (a set of short characters or a list of verbose
// aliases), flags, a destination and a Converter whose three phases
// (Check, Extract, Finalize) turn the matched tokens into a value:
//
//	var verbose bool
//	var mode string
//	table := []optparse.Option{
//		optparse.Short("v", &verbose, optparse.SetFlag{}),
//		optparse.Long("mode", &mode, optparse.StoreString{}).WithArg("MODE").WithRequired(),
//	}
//	p, err := optparse.NewParser(table, optparse.WithMinSignificant(2))
//	if err != nil {
//		return err
//	}
//	next, err := p.ParseArgs(os.Args[1:], 0)
//	if optparse.IsFatal(err) {
//		return err
//	}
//	if _, err := p.CheckRequired(); err != nil {
//		return err
//	}
//	positional := os.Args[1+next:]
//
// Parsing stops at the first token that is not an option, reporting
// ErrArgumentsFollow with its index, or after a lone "--". Glued short
// clusters such as "-vx" or "-tfoo" are split on the fly; verbose
// options may be abbreviated when WithMinSignificant is set.
package optparse

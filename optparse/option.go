package optparse

import (
	"strings"
	"unicode/utf8"
)

// Prefix is the leading marker that distinguishes option tokens
type Prefix int

const (
	PrefixNone   Prefix = iota // positional, no marker
	PrefixSingle               // "-"
	PrefixDouble               // "--"
)

func (p Prefix) String() string {
	switch p {
	case PrefixNone:
		return ""
	case PrefixSingle:
		return "-"
	case PrefixDouble:
		return "--"
	default:
		return "?"
	}
}

func (p Prefix) valid() bool {
	return p >= PrefixNone && p <= PrefixDouble
}

// Kind selects how an option's Text is matched against a token
type Kind int

const (
	// KindShort treats Text as a character set; a token matches when its
	// first character is in the set.
	KindShort Kind = iota
	// KindVerbose treats Text as whitespace separated alias spellings
	// compared for exact equality.
	KindVerbose
)

func (k Kind) String() string {
	switch k {
	case KindShort:
		return "short"
	case KindVerbose:
		return "verbose"
	default:
		return "invalid"
	}
}

func (k Kind) valid() bool {
	return k == KindShort || k == KindVerbose
}

// Flags modify how an option is parsed and checked
type Flags uint8

const (
	// FlagConsumesArgs marks an option whose converter reads the
	// following token(s). A glued short cluster such as "-tfoo" then
	// yields "foo" as the value instead of re-parsing it as "-foo".
	FlagConsumesArgs Flags = 1 << iota
	// FlagRequired makes CheckRequired report the option until it has
	// been matched at least once.
	FlagRequired
)

// Option describes one entry of an option table.
//
// An entry with empty Text matches every token carrying its Prefix; with
// PrefixNone that makes it a catch-all for positional arguments.
type Option struct {
	Text      string
	Prefix    Prefix
	Kind      Kind
	Flags     Flags
	Var       any       // destination written by Converter
	Converter Converter // the three dispatch phases
	User      any       // opaque data handed to every phase

	Help string // one-line description for WriteUsage
	Arg  string // value placeholder for WriteUsage

	matched bool
	failed  bool
}

// Short builds a single-dash option matching any character of chars
func Short(chars string, v any, c Converter) Option {
	return Option{Text: chars, Prefix: PrefixSingle, Kind: KindShort, Var: v, Converter: c}
}

// Long builds a double-dash option with whitespace separated aliases
func Long(aliases string, v any, c Converter) Option {
	return Option{Text: aliases, Prefix: PrefixDouble, Kind: KindVerbose, Var: v, Converter: c}
}

// Bare builds a positional catch-all entry
func Bare(v any, c Converter) Option {
	return Option{Prefix: PrefixNone, Kind: KindVerbose, Var: v, Converter: c}
}

// WithArg marks the option as consuming a value named arg in usage output
func (o Option) WithArg(arg string) Option {
	o.Flags |= FlagConsumesArgs
	o.Arg = arg
	return o
}

// WithRequired marks the option as required
func (o Option) WithRequired() Option {
	o.Flags |= FlagRequired
	return o
}

// WithHelp sets the usage description
func (o Option) WithHelp(help string) Option {
	o.Help = help
	return o
}

// WithUser sets the opaque user data
func (o Option) WithUser(user any) Option {
	o.User = user
	return o
}

// Matched reports whether the option has been dispatched successfully
func (o *Option) Matched() bool { return o.matched }

// Failed reports whether a dispatch of the option returned an error
func (o *Option) Failed() bool { return o.failed }

// ConsumesArgs reports whether FlagConsumesArgs is set
func (o *Option) ConsumesArgs() bool { return o.Flags&FlagConsumesArgs != 0 }

// IsRequired reports whether FlagRequired is set
func (o *Option) IsRequired() bool { return o.Flags&FlagRequired != 0 }

// Aliases returns the spellings the option answers to, without prefix.
// Short options yield one entry per character.
func (o *Option) Aliases() []string {
	if o.Kind == KindVerbose {
		return strings.Fields(o.Text)
	}
	out := make([]string, 0, utf8.RuneCountInString(o.Text))
	for _, r := range o.Text {
		out = append(out, string(r))
	}
	return out
}

// Spellings returns the aliases with the option prefix applied
func (o *Option) Spellings() []string {
	aliases := o.Aliases()
	for i, a := range aliases {
		aliases[i] = o.Prefix.String() + a
	}
	return aliases
}

// IsBare reports whether the option is a positional catch-all, whose
// token is its own value
func (o *Option) IsBare() bool { return o.argsToSkip() == 0 }

// argsToSkip is the number of tokens taken by the option spelling
// itself. Bare positional entries take none: the token is the value.
func (o *Option) argsToSkip() int {
	if o.Prefix != PrefixNone || o.Text != "" {
		return 1
	}
	return 0
}

func (o *Option) reset() {
	o.matched = false
	o.failed = false
}

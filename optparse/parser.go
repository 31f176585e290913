package optparse

import (
	"errors"
	"fmt"

	"github.com/dzonerzy/go-optable/argv"
	"github.com/dzonerzy/go-optable/internal/fuzzy"
	"github.com/dzonerzy/go-optable/internal/pool"
	optio "github.com/dzonerzy/go-optable/io"
)

// ParseState names the steps of the token scan loop, used in trace output
type ParseState int

const (
	StateScanToken ParseState = iota
	StateDetectPrefix
	StateComplete
	StateMatch
	StateSplit
	StateDispatch
	StateAdvance
)

func (s ParseState) String() string {
	switch s {
	case StateScanToken:
		return "scan"
	case StateDetectPrefix:
		return "prefix"
	case StateComplete:
		return "complete"
	case StateMatch:
		return "match"
	case StateSplit:
		return "split"
	case StateDispatch:
		return "dispatch"
	case StateAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Parser is the handle over an option table. It holds a reference to the
// caller's table, so Matched and Failed are visible through it.
//
// A Parser is not safe for concurrent use; converters must not call back
// into the Parser that is dispatching them.
type Parser struct {
	table       []Option
	initialized bool

	unknown  string
	erroring string

	abbreviate     bool
	minSignificant int
	maxDistance    int
	log            *optio.Logger
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithMinSignificant enables abbreviation of verbose options to any
// unambiguous prefix of at least n bytes; n < 1 counts as 1. Without it
// verbose options must be spelled in full.
func WithMinSignificant(n int) ParserOption {
	return func(p *Parser) {
		p.abbreviate = true
		p.minSignificant = max(n, 1)
	}
}

// WithSuggestions fills ParseError.Suggestions for unknown verbose options
// with the closest spellings within maxDistance edits, best first. 0
// disables it (default).
func WithSuggestions(maxDistance int) ParserOption {
	return func(p *Parser) { p.maxDistance = maxDistance }
}

// WithLogger traces the scan loop at debug level
func WithLogger(l *optio.Logger) ParserOption {
	return func(p *Parser) { p.log = l }
}

// NewParser validates table, clears the per-entry state and returns a
// ready handle.
func NewParser(table []Option, opts ...ParserOption) (*Parser, error) {
	if err := Validate(table); err != nil {
		return nil, err
	}
	p := &Parser{table: table}
	for _, opt := range opts {
		opt(p)
	}
	p.resetState()
	p.initialized = true
	return p, nil
}

// Reset clears Matched/Failed on every entry and the captured diagnostics
func (p *Parser) Reset() error {
	if err := p.ready(); err != nil {
		return err
	}
	p.resetState()
	return nil
}

// Close releases the handle. Any later call reports ErrUninitialized.
func (p *Parser) Close() {
	if p == nil {
		return
	}
	p.table = nil
	p.unknown = ""
	p.erroring = ""
	p.initialized = false
}

// Unknown returns the last token that matched no entry
func (p *Parser) Unknown() string {
	if p == nil {
		return ""
	}
	return p.unknown
}

// Erroring returns the last option token whose converter failed
func (p *Parser) Erroring() string {
	if p == nil {
		return ""
	}
	return p.erroring
}

// Len returns the number of table entries
func (p *Parser) Len() int {
	if p == nil {
		return 0
	}
	return len(p.table)
}

// Option returns table entry i, or nil when i is out of range
func (p *Parser) Option(i int) *Option {
	if p == nil || i < 0 || i >= len(p.table) {
		return nil
	}
	return &p.table[i]
}

// CheckRequired returns the index of the first required entry that has
// not been matched, with an ErrMissingRequired error, or -1 and nil.
func (p *Parser) CheckRequired() (int, error) {
	if err := p.ready(); err != nil {
		return -1, err
	}
	for i := range p.table {
		o := &p.table[i]
		if o.IsRequired() && !o.matched {
			e := NewParseError(ErrorTypeMissingRequired, "missing required option")
			e.Index = i
			if s := o.Spellings(); len(s) > 0 {
				e.Option = s[0]
			}
			return i, e
		}
	}
	return -1, nil
}

// ParseArgs is Parse over a plain slice
func (p *Parser) ParseArgs(args []string, start int) (int, error) {
	return p.Parse(argv.New(args...), start)
}

// Parse scans args from start, dispatching every recognised option, and
// returns the index of the first token it did not consume.
//
// A nil error means every token was consumed. ErrArgumentsFollow means
// parsing stopped at a positional token (or just past a lone "--"), and
// ErrEndOfList that start was already past the end. Any other error is
// fatal; see IsFatal. args is never modified.
func (p *Parser) Parse(args *argv.Vector, start int) (int, error) {
	if err := p.ready(); err != nil {
		return start, err
	}
	if err := Validate(p.table); err != nil {
		return start, err
	}
	if start < 0 {
		e := NewParseError(ErrorTypeContract, fmt.Sprintf("negative start index %d", start))
		return start, e
	}
	if start >= args.Len() {
		return start, ErrEndOfList
	}

	work := pool.GetVector(args)
	defer func() { pool.PutVector(work) }()

	pos := start   // cursor in work
	index := start // cursor in args; differs from pos once tokens are split

	for pos < work.Len() {
		token := work.At(pos)
		p.trace(StateScanToken, "%d %q", index, token)

		prefix, raw := detectPrefix(token)
		p.trace(StateDetectPrefix, "%q name=%q", prefix.String(), raw)

		name := raw
		if p.abbreviate {
			if full := complete(raw, prefix, p.table, p.minSignificant); full != raw {
				p.trace(StateComplete, "%q -> %q", raw, full)
				name = full
			}
		}

		i := find(p.table, name, prefix)
		if i < 0 {
			return p.notFound(token, prefix, name, index)
		}
		opt := &p.table[i]
		p.trace(StateMatch, "%q -> entry %d", token, i)

		split := false
		if opt.Kind == KindShort && opt.Text != "" {
			var next *argv.Vector
			// clusters split on what was typed, never on a completed name
			if next, split = splitToken(work, pos, prefix, raw, opt.ConsumesArgs()); split {
				pool.PutVector(work)
				work = next
				token = work.At(pos)
				_, name = detectPrefix(token)
				p.trace(StateSplit, "%q + %q", token, work.At(pos+1))
			}
		}

		call := &Call{
			Option:   opt,
			Index:    i,
			Token:    token,
			Raw:      args.At(index),
			Name:     name,
			Position: index,
			Split:    split,
			log:      p.log,
		}
		n, err := p.dispatch(call, work.Tail(pos))
		if errors.Is(err, ErrSkip) {
			p.trace(StateAdvance, "skip %q", token)
			pos++
			if !split {
				index++
			}
			continue
		}
		if err != nil {
			return index, err
		}

		pos += n
		if split {
			index += n - 1
		} else {
			index += n
		}
		p.trace(StateAdvance, "consumed %d, next %d", n, index)
	}

	return index, nil
}

// dispatch runs the three phases for one matched option and returns the
// number of tokens consumed, the option spelling included. ErrSkip is
// only returned when Check asked for it.
func (p *Parser) dispatch(c *Call, rest []string) (int, error) {
	p.trace(StateDispatch, "%s entry %d", c.Token, c.Index)
	conv := c.Option.Converter

	if err := conv.Check(c, rest, c.Split); err != nil {
		if errors.Is(err, ErrSkip) {
			return 0, ErrSkip
		}
		return 0, p.fail(c, "check", err)
	}

	skip := c.Option.argsToSkip()
	consumed, err := conv.Extract(c, rest[skip:])
	if err != nil {
		return 0, p.fail(c, "extract", err)
	}
	if consumed < 0 || skip+consumed > len(rest) {
		return 0, p.fail(c, "extract", fmt.Errorf("%w: consumed %d of %d tokens", ErrProcessing, consumed, len(rest)-skip))
	}
	if consumed == 0 && skip == 0 {
		// a bare entry that consumes nothing would never advance
		return 0, p.fail(c, "extract", fmt.Errorf("%w: bare entry consumed no token", ErrProcessing))
	}

	if err := conv.Finalize(c); err != nil {
		return 0, p.fail(c, "finalize", err)
	}

	c.Option.matched = true
	return skip + consumed, nil
}

// fail records the failure on the entry and the handle and turns err
// into a *ParseError carrying the offending token.
func (p *Parser) fail(c *Call, phase string, err error) error {
	c.Option.failed = true
	p.erroring = c.Raw
	if p.log.Enabled(optio.LevelDebug) {
		p.log.Debug("%s failed in %s: %v", c.Token, phase, err)
	}

	// ErrSkip must not stay in the chain or the failure would read as a skip
	if errors.Is(err, ErrSkip) {
		err = NewParseError(ErrorTypeProcessing, phase+" returned skip")
	}

	var out ParseError
	if pe, ok := err.(*ParseError); ok {
		out = *pe
	} else {
		out = ParseError{Type: TypeOf(err), Message: "option " + phase + " failed", Err: err}
		if out.Type == "" {
			out.Type = ErrorTypeCallback
		}
	}
	out.Option = c.Raw
	out.Index = c.Index
	out.Position = c.Position
	return &out
}

func (p *Parser) notFound(token string, prefix Prefix, name string, index int) (int, error) {
	if prefix == PrefixNone {
		p.trace(StateMatch, "%q is positional", token)
		return index, ErrArgumentsFollow
	}
	if prefix == PrefixDouble && name == "" {
		p.trace(StateMatch, "end of options")
		return index + 1, ErrArgumentsFollow
	}

	p.unknown = token
	e := NewParseError(ErrorTypeUnknownOption, "unknown option")
	e.Option = token
	e.Position = index
	e.Suggestions = p.suggest(prefix, name)
	if len(e.Suggestions) > 0 {
		e.Suggestion = e.Suggestions[0]
	}
	p.trace(StateMatch, "%q unknown", token)
	return index, e
}

// maxSuggestions bounds ParseError.Suggestions
const maxSuggestions = 3

func (p *Parser) suggest(prefix Prefix, name string) []string {
	if p.maxDistance <= 0 {
		return nil
	}
	var spellings []string
	for i := range p.table {
		o := &p.table[i]
		if o.Kind == KindVerbose && o.Prefix == prefix {
			spellings = append(spellings, o.Aliases()...)
		}
	}
	out := fuzzy.FindSuggestions(name, spellings, p.maxDistance, maxSuggestions)
	for i := range out {
		out[i] = prefix.String() + out[i]
	}
	return out
}

func (p *Parser) ready() error {
	if p == nil {
		return NewParseError(ErrorTypeContract, "nil option parser")
	}
	if !p.initialized {
		return NewParseError(ErrorTypeUninitialized, "option parser not initialized")
	}
	return nil
}

func (p *Parser) resetState() {
	for i := range p.table {
		p.table[i].reset()
	}
	p.unknown = ""
	p.erroring = ""
}

func (p *Parser) trace(state ParseState, format string, args ...any) {
	if !p.log.Enabled(optio.LevelDebug) {
		return
	}
	p.log.Debug(state.String()+": "+format, args...)
}

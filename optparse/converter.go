package optparse

import (
	"fmt"
	"strconv"
	"time"
	"unsafe"

	"github.com/dzonerzy/go-optable/argv"
	optio "github.com/dzonerzy/go-optable/io"
)

// Converter is the three-phase contract invoked for every matched option.
//
// Check sees the tokens from the option on and whether the token was
// produced by splitting a glued short cluster; returning ErrSkip passes
// over the option. Extract sees the tokens after the option spelling
// (for bare entries the token itself) and reports how many it consumed.
// Finalize runs after a successful Extract.
type Converter interface {
	Check(c *Call, rest []string, split bool) error
	Extract(c *Call, rest []string) (consumed int, err error)
	Finalize(c *Call) error
}

// Call carries the state of one dispatch. It is only valid while the
// converter phases run.
type Call struct {
	Option   *Option
	Index    int    // table index of Option
	Token    string // the option token being processed, after splitting
	Raw      string // the caller's token at Position, before splitting
	Name     string // the spelling without prefix, after completion
	Position int    // index of Token in the caller's vector
	Split    bool

	log *optio.Logger
}

// Var returns the destination bound to the option
func (c *Call) Var() any { return c.Option.Var }

// User returns the opaque user data of the option
func (c *Call) User() any { return c.Option.User }

// Spelling returns the completed option spelling, prefix included
func (c *Call) Spelling() string { return c.Option.Prefix.String() + c.Name }

// Logger returns the parser's logger; it may be nil, which drops output
func (c *Call) Logger() *optio.Logger { return c.log }

// Noop satisfies every phase without doing anything. Embed it to get
// default Check and Finalize.
type Noop struct{}

func (Noop) Check(*Call, []string, bool) error { return nil }

func (Noop) Extract(*Call, []string) (int, error) { return 0, nil }

func (Noop) Finalize(*Call) error { return nil }

// Funcs adapts three plain functions to a Converter. Every field is
// required; Validate reports a nil one as a missing callback.
type Funcs struct {
	OnCheck    func(c *Call, rest []string, split bool) error
	OnExtract  func(c *Call, rest []string) (int, error)
	OnFinalize func(c *Call) error
}

func (f Funcs) Check(c *Call, rest []string, split bool) error {
	if f.OnCheck == nil {
		return ErrMissingCallback
	}
	return f.OnCheck(c, rest, split)
}

func (f Funcs) Extract(c *Call, rest []string) (int, error) {
	if f.OnExtract == nil {
		return 0, ErrMissingCallback
	}
	return f.OnExtract(c, rest)
}

func (f Funcs) Finalize(c *Call) error {
	if f.OnFinalize == nil {
		return ErrMissingCallback
	}
	return f.OnFinalize(c)
}

func (f Funcs) complete() bool {
	return f.OnCheck != nil && f.OnExtract != nil && f.OnFinalize != nil
}

// SetFlag sets a *int to 1 or a *bool to true and consumes nothing
type SetFlag struct{ Noop }

func (SetFlag) Extract(c *Call, _ []string) (int, error) {
	switch v := c.Var().(type) {
	case *int:
		*v = 1
	case *bool:
		*v = true
	default:
		return 0, variableMismatch(c, "*int or *bool")
	}
	return 0, nil
}

// Count increments a *int each time the option is seen, so "-vvv" yields 3
type Count struct{ Noop }

func (Count) Extract(c *Call, _ []string) (int, error) {
	v, ok := c.Var().(*int)
	if !ok {
		return 0, variableMismatch(c, "*int")
	}
	*v++
	return 0, nil
}

// StoreString copies the next token into a *string. A positive Max is
// the destination capacity: the value must be strictly shorter.
type StoreString struct {
	Noop
	Max int
}

func (s StoreString) Extract(c *Call, rest []string) (int, error) {
	if len(rest) == 0 {
		return 0, missingValue(c)
	}
	v, ok := c.Var().(*string)
	if !ok {
		return 0, variableMismatch(c, "*string")
	}
	if s.Max > 0 && len(rest[0]) >= s.Max {
		return 0, invalidValue(c, rest[0], fmt.Errorf("longer than %d bytes", s.Max-1))
	}
	*v = rest[0]
	return 1, nil
}

// Signed is the set of integer kinds StoreNumber can fill
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// StoreNumber parses the next token as a T. Base follows strconv.ParseInt:
// 0 accepts 0x, 0o and 0b prefixes.
type StoreNumber[T Signed] struct {
	Noop
	Base int
}

func (s StoreNumber[T]) Extract(c *Call, rest []string) (int, error) {
	if len(rest) == 0 || rest[0] == "" {
		return 0, missingValue(c)
	}
	v, ok := c.Var().(*T)
	if !ok {
		return 0, variableMismatch(c, fmt.Sprintf("%T", v))
	}
	var zero T
	n, err := strconv.ParseInt(rest[0], s.Base, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return 0, invalidValue(c, rest[0], err)
	}
	*v = T(n)
	return 1, nil
}

// Fixed-width instantiations of StoreNumber
type (
	StoreShort = StoreNumber[int16]
	StoreInt   = StoreNumber[int]
	StoreLong  = StoreNumber[int64]
)

// Float is the set of float kinds StoreFloat can fill
type Float interface {
	~float32 | ~float64
}

// StoreFloat parses the next token as a T
type StoreFloat[T Float] struct{ Noop }

func (StoreFloat[T]) Extract(c *Call, rest []string) (int, error) {
	if len(rest) == 0 || rest[0] == "" {
		return 0, missingValue(c)
	}
	v, ok := c.Var().(*T)
	if !ok {
		return 0, variableMismatch(c, fmt.Sprintf("%T", v))
	}
	var zero T
	f, err := strconv.ParseFloat(rest[0], int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return 0, invalidValue(c, rest[0], err)
	}
	*v = T(f)
	return 1, nil
}

// StoreDuration parses the next token with time.ParseDuration
type StoreDuration struct{ Noop }

func (StoreDuration) Extract(c *Call, rest []string) (int, error) {
	if len(rest) == 0 || rest[0] == "" {
		return 0, missingValue(c)
	}
	v, ok := c.Var().(*time.Duration)
	if !ok {
		return 0, variableMismatch(c, "*time.Duration")
	}
	d, err := time.ParseDuration(rest[0])
	if err != nil {
		return 0, invalidValue(c, rest[0], err)
	}
	*v = d
	return 1, nil
}

// AppendString appends the next token to a *[]string. On a bare entry
// the next token is the positional argument itself.
type AppendString struct{ Noop }

func (AppendString) Extract(c *Call, rest []string) (int, error) {
	if len(rest) == 0 {
		return 0, missingValue(c)
	}
	v, ok := c.Var().(*[]string)
	if !ok {
		return 0, variableMismatch(c, "*[]string")
	}
	*v = append(*v, rest[0])
	return 1, nil
}

// Collect appends the next token to an *argv.Vector
type Collect struct{ Noop }

func (Collect) Extract(c *Call, rest []string) (int, error) {
	if len(rest) == 0 {
		return 0, missingValue(c)
	}
	v, ok := c.Var().(*argv.Vector)
	if !ok || v == nil {
		return 0, variableMismatch(c, "*argv.Vector")
	}
	v.Append(rest[0])
	return 1, nil
}

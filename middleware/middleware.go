// Package middleware wraps option converters with cross-cutting behaviour
// Three built-ins: Logger, Recovery and Validator
package middleware

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dzonerzy/go-optable/optparse"
)

// Middleware decorates a converter. The returned converter must call the
// phases of next it does not replace.
type Middleware func(next optparse.Converter) optparse.Converter

// MiddlewareChain represents a chain of middleware functions
type MiddlewareChain []Middleware

// Apply wraps conv with the chain. The first middleware is the outermost.
func (chain MiddlewareChain) Apply(conv optparse.Converter) optparse.Converter {
	for i := len(chain) - 1; i >= 0; i-- {
		conv = chain[i](conv)
	}
	return conv
}

// Use returns a new chain with the provided middleware appended.
func (chain MiddlewareChain) Use(middleware ...Middleware) MiddlewareChain {
	out := make(MiddlewareChain, 0, len(chain)+len(middleware))
	out = append(out, chain...)
	return append(out, middleware...)
}

// Chain creates a new middleware chain from the provided middleware, preserving
// order.
func Chain(middleware ...Middleware) MiddlewareChain {
	return MiddlewareChain(middleware)
}

// Wrap applies the chain to every entry of table in place. Entries that
// fail validation (a nil converter, or Funcs with an empty slot) are left
// alone so NewParser still reports them.
func Wrap(table []optparse.Option, middleware ...Middleware) []optparse.Option {
	chain := Chain(middleware...)
	for i := range table {
		if !wrappable(table, i) {
			continue
		}
		table[i].Converter = chain.Apply(table[i].Converter)
	}
	return table
}

// WrapOption applies the chain to the entries answering to spelling,
// prefix included (for example "--port" or "-p"). It reports whether any
// entry matched.
func WrapOption(table []optparse.Option, spelling string, middleware ...Middleware) bool {
	chain := Chain(middleware...)
	found := false
	for i := range table {
		if !wrappable(table, i) || !slices.Contains(table[i].Spellings(), spelling) {
			continue
		}
		table[i].Converter = chain.Apply(table[i].Converter)
		found = true
	}
	return found
}

func wrappable(table []optparse.Option, i int) bool {
	return optparse.Validate(table[i:i+1]) == nil
}

// Phase names one converter phase
type Phase string

const (
	PhaseCheck    Phase = "check"
	PhaseExtract  Phase = "extract"
	PhaseFinalize Phase = "finalize"
)

// Error types for middleware

// ValidationError represents a rejected option value
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// RecoveryError represents a panic recovered from a converter phase
type RecoveryError struct {
	Panic  any
	Option string
	Phase  Phase
	Stack  []byte
}

func (e *RecoveryError) Error() string {
	return "option '" + e.Option + "' panicked in " + string(e.Phase) + ": " + toString(e.Panic)
}

// Configuration types

// MiddlewareConfig contains configuration for middleware behavior
type MiddlewareConfig struct {
	LogLevel    LogLevel
	LogOutput   LogOutput
	LogFormat   LogFormat
	Writer      io.Writer // overrides LogOutput when set
	IncludeArgs bool
	PrintStack  bool
	StackSize   int
}

// LogLevel represents logging levels
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)

// LogOutput represents log output destinations
type LogOutput int

const (
	LogOutputStderr LogOutput = iota
	LogOutputStdout
	LogOutputNone
)

// LogFormat represents log formats
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
)

// MiddlewareOption configures a MiddlewareConfig
type MiddlewareOption func(config *MiddlewareConfig)

func DefaultConfig() *MiddlewareConfig {
	return &MiddlewareConfig{
		LogLevel:    LogLevelInfo,
		LogOutput:   LogOutputStderr,
		LogFormat:   LogFormatText,
		IncludeArgs: true,
		PrintStack:  true,
		StackSize:   4096,
	}
}

func newConfig(options []MiddlewareOption) *MiddlewareConfig {
	config := DefaultConfig()
	for _, option := range options {
		option(config)
	}
	return config
}

func WithLogLevel(level LogLevel) MiddlewareOption {
	return func(config *MiddlewareConfig) {
		config.LogLevel = level
	}
}

func WithLogFormat(format LogFormat) MiddlewareOption {
	return func(config *MiddlewareConfig) {
		config.LogFormat = format
	}
}

func WithWriter(w io.Writer) MiddlewareOption {
	return func(config *MiddlewareConfig) {
		config.Writer = w
	}
}

func WithStackTrace(enabled bool) MiddlewareOption {
	return func(config *MiddlewareConfig) {
		config.PrintStack = enabled
	}
}

// writer returns the configured destination, or nil to drop output
func (c *MiddlewareConfig) writer() io.Writer {
	if c.Writer != nil {
		return c.Writer
	}
	switch c.LogOutput {
	case LogOutputStdout:
		return os.Stdout
	case LogOutputNone:
		return nil
	default:
		return os.Stderr
	}
}

// Utility functions

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func optionName(c *optparse.Call) string {
	if c == nil {
		return "unknown"
	}
	if c.Token != "" {
		return c.Token
	}
	return c.Spelling()
}

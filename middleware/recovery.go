package middleware

import (
	"fmt"
	"runtime"

	"github.com/dzonerzy/go-optable/optparse"
)

// Recovery turns a panic in any converter phase into a *RecoveryError.
// The parser reports it as a callback error with the RecoveryError in
// its chain.
func Recovery(options ...MiddlewareOption) Middleware {
	config := newConfig(options)
	return RecoveryWithHandler(func(r *RecoveryError) error {
		if config.PrintStack && len(r.Stack) > 0 {
			if w := config.writer(); w != nil {
				fmt.Fprintf(w, "PANIC in option '%s' (%s): %v\n", r.Option, r.Phase, r.Panic)
				fmt.Fprintf(w, "Stack trace:\n%s\n", r.Stack)
			}
		}
		return r
	}, options...)
}

// RecoveryWithHandler creates a recovery middleware with a custom panic
// handler. The handler's result replaces the phase's error.
func RecoveryWithHandler(handler func(r *RecoveryError) error, options ...MiddlewareOption) Middleware {
	config := newConfig(options)

	return func(next optparse.Converter) optparse.Converter {
		recoverInto := func(err *error, c *optparse.Call, phase Phase) {
			r := recover()
			if r == nil {
				return
			}
			var stack []byte
			if config.PrintStack {
				stack = make([]byte, config.StackSize)
				stack = stack[:runtime.Stack(stack, false)]
			}
			*err = handler(&RecoveryError{
				Panic:  r,
				Option: optionName(c),
				Phase:  phase,
				Stack:  stack,
			})
		}

		return optparse.Funcs{
			OnCheck: func(c *optparse.Call, rest []string, split bool) (err error) {
				defer recoverInto(&err, c, PhaseCheck)
				return next.Check(c, rest, split)
			},
			OnExtract: func(c *optparse.Call, rest []string) (n int, err error) {
				defer recoverInto(&err, c, PhaseExtract)
				return next.Extract(c, rest)
			},
			OnFinalize: func(c *optparse.Call) (err error) {
				defer recoverInto(&err, c, PhaseFinalize)
				return next.Finalize(c)
			},
		}
	}
}

// RecoveryToError converts panics to errors without printing stack traces
func RecoveryToError() Middleware {
	return Recovery(WithStackTrace(false))
}

// NoopRecovery lets panics propagate
func NoopRecovery() Middleware {
	return func(next optparse.Converter) optparse.Converter {
		return next
	}
}

// RecoveryStats tracks recovery statistics
type RecoveryStats struct {
	TotalPanics  int
	OptionPanics map[string]int
	LastPanic    *RecoveryError
}

// NewRecoveryStats creates a new recovery statistics tracker
func NewRecoveryStats() *RecoveryStats {
	return &RecoveryStats{
		OptionPanics: make(map[string]int),
	}
}

// RecoveryWithStats records every recovered panic in stats
func RecoveryWithStats(stats *RecoveryStats, options ...MiddlewareOption) Middleware {
	return RecoveryWithHandler(func(r *RecoveryError) error {
		stats.TotalPanics++
		if stats.OptionPanics == nil {
			stats.OptionPanics = make(map[string]int)
		}
		stats.OptionPanics[r.Option]++
		stats.LastPanic = r
		return r
	}, options...)
}

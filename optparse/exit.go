package optparse

import "errors"

// ExitError requests a specific exit code from inside a converter
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no mapping matches
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodes maps parse outcomes to process exit codes
type ExitCodes struct {
	byType   map[ErrorType]int
	defaults ExitCodeDefaults
}

// NewExitCodes returns a mapping where command-line mistakes (unknown
// option, missing or invalid value, missing required option) exit with 2
// and every other fatal error with 1.
func NewExitCodes() *ExitCodes {
	e := &ExitCodes{
		byType:   make(map[ErrorType]int),
		defaults: defaultExitDefaults(),
	}
	for _, typ := range []ErrorType{
		ErrorTypeUnknownOption,
		ErrorTypeMissingValue,
		ErrorTypeInvalidValue,
		ErrorTypeMissingRequired,
	} {
		e.byType[typ] = e.defaults.MisusageError
	}
	return e
}

// Define overrides the exit code for one error category
func (e *ExitCodes) Define(typ ErrorType, code int) *ExitCodes { e.byType[typ] = code; return e }

// Default replaces the fallback codes. Category mappings made with
// NewExitCodes keep their values.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes { e.defaults = d; return e }

// Resolve converts err to an exit code.
// Precedence:
//  1. non-fatal outcomes (nil and control signals) give Success
//  2. ExitError gives its requested code
//  3. ParseError category mapping
//  4. GeneralError
func (e *ExitCodes) Resolve(err error) int {
	if !IsFatal(err) {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if typ := TypeOf(err); typ != "" {
		if code, ok := e.byType[typ]; ok {
			return code
		}
	}
	return e.defaults.GeneralError
}

package optparse

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorType represents error categories for table validation and parsing.
// These categories drive exit-code mapping (via ExitCodes).
type ErrorType string

const (
	// contract violations
	ErrorTypeUninitialized ErrorType = "uninitialized"
	ErrorTypeContract      ErrorType = "contract_violation"
	ErrorTypeVariable      ErrorType = "variable_mismatch"

	// table structure
	ErrorTypeInvalidPrefix   ErrorType = "invalid_prefix"
	ErrorTypeInvalidKind     ErrorType = "invalid_kind"
	ErrorTypeMissingCallback ErrorType = "missing_callback"

	// parse time
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingRequired ErrorType = "missing_required"
	ErrorTypeCallback        ErrorType = "callback_error"
	ErrorTypeProcessing      ErrorType = "processing_error"
)

// Control signals. None of them is fatal; see IsFatal.
var (
	// ErrEndOfList is returned when the start index is already past the
	// last argument.
	ErrEndOfList = errors.New("optparse: end of argument list")
	// ErrArgumentsFollow is returned when parsing stops at a token that
	// is not an option; the returned index names that token.
	ErrArgumentsFollow = errors.New("optparse: non-option arguments follow")
	// ErrSkip may be returned by Converter.Check to pass over an option
	// silently. Returned from any other phase it is a processing error.
	ErrSkip = errors.New("optparse: skip option")
)

// ParseError represents every fatal outcome of Validate, Parse and
// CheckRequired.
type ParseError struct {
	Type        ErrorType
	Message     string
	Option      string   // offending token or option spelling
	Index       int      // table index, -1 when not tied to an entry
	Position    int      // argument index, -1 when not tied to a token
	Suggestion  string   // closest known spelling for unknown options
	Suggestions []string // close spellings, best first; Suggestion is the first
	Err         error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Option != "" {
		b.WriteString(": ")
		b.WriteString(e.Option)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is a *ParseError of the same Type, so the
// sentinels below work with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Type == e.Type
}

// NewParseError creates a ParseError not tied to any entry or token
func NewParseError(typ ErrorType, message string) *ParseError {
	return &ParseError{Type: typ, Message: message, Index: -1, Position: -1}
}

// Sentinels for errors.Is, one per ErrorType
var (
	ErrUninitialized   = NewParseError(ErrorTypeUninitialized, "option parser not initialized")
	ErrContract        = NewParseError(ErrorTypeContract, "contract violation")
	ErrVariable        = NewParseError(ErrorTypeVariable, "variable type mismatch")
	ErrInvalidPrefix   = NewParseError(ErrorTypeInvalidPrefix, "invalid prefix kind")
	ErrInvalidKind     = NewParseError(ErrorTypeInvalidKind, "invalid option kind")
	ErrMissingCallback = NewParseError(ErrorTypeMissingCallback, "missing callback")
	ErrUnknownOption   = NewParseError(ErrorTypeUnknownOption, "unknown option")
	ErrMissingValue    = NewParseError(ErrorTypeMissingValue, "missing argument")
	ErrInvalidValue    = NewParseError(ErrorTypeInvalidValue, "invalid argument")
	ErrMissingRequired = NewParseError(ErrorTypeMissingRequired, "missing required option")
	ErrCallback        = NewParseError(ErrorTypeCallback, "option callback failed")
	ErrProcessing      = NewParseError(ErrorTypeProcessing, "option processing error")
)

// IsFatal reports whether err should abort the caller. nil and the
// control signals ErrEndOfList, ErrArgumentsFollow and ErrSkip are not fatal.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrEndOfList), errors.Is(err, ErrArgumentsFollow), errors.Is(err, ErrSkip):
		return false
	default:
		return true
	}
}

// TypeOf returns the ErrorType carried by err, or "" if err holds no ParseError
func TypeOf(err error) ErrorType {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Type
	}
	return ""
}

// errors produced by converters; the driver fills in Option and positions

func missingValue(c *Call) error {
	e := NewParseError(ErrorTypeMissingValue, "missing argument")
	e.Option = c.Token
	return e
}

func invalidValue(c *Call, value string, cause error) error {
	e := NewParseError(ErrorTypeInvalidValue, "invalid argument "+strconv.Quote(value))
	e.Option = c.Token
	e.Err = cause
	return e
}

func variableMismatch(c *Call, want string) error {
	e := NewParseError(ErrorTypeVariable, "variable must be "+want)
	e.Option = c.Token
	return e
}

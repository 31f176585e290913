package optparse

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodesResolve(t *testing.T) {
	codes := NewExitCodes()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"arguments follow", ErrArgumentsFollow, 0},
		{"end of list", ErrEndOfList, 0},
		{"unknown option", ErrUnknownOption, 2},
		{"missing value", ErrMissingValue, 2},
		{"invalid value", fmt.Errorf("wrapped: %w", ErrInvalidValue), 2},
		{"missing required", ErrMissingRequired, 2},
		{"callback", ErrCallback, 1},
		{"plain", errors.New("x"), 1},
		{"exit request", &ParseError{Type: ErrorTypeCallback, Err: &ExitError{Code: 7}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codes.Resolve(tt.err); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestExitCodesOverrides(t *testing.T) {
	codes := NewExitCodes().
		Define(ErrorTypeUnknownOption, 64).
		Default(ExitCodeDefaults{Success: 0, GeneralError: 70, MisusageError: 2})

	if got := codes.Resolve(ErrUnknownOption); got != 64 {
		t.Errorf("Expected 64, got %d", got)
	}
	if got := codes.Resolve(ErrProcessing); got != 70 {
		t.Errorf("Expected 70, got %d", got)
	}
	if got := codes.Resolve(ErrMissingValue); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestExitFromConverter(t *testing.T) {
	conv := Funcs{
		OnCheck:    func(*Call, []string, bool) error { return &ExitError{Code: 3} },
		OnExtract:  func(*Call, []string) (int, error) { return 0, nil },
		OnFinalize: func(*Call) error { return nil },
	}
	p := mustParser(t, []Option{Long("quit", nil, conv)})
	_, err := p.ParseArgs([]string{"--quit"}, 0)
	if got := NewExitCodes().Resolve(err); got != 3 {
		t.Errorf("Expected 3, got %d (%v)", got, err)
	}
}

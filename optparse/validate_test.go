package optparse

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	var flag bool
	var nilFuncs *Funcs
	tests := []struct {
		name  string
		entry Option
		want  error
	}{
		{"valid", Short("v", &flag, SetFlag{}), nil},
		{"bad prefix", Option{Text: "v", Prefix: Prefix(3), Kind: KindShort, Converter: SetFlag{}}, ErrInvalidPrefix},
		{"bad kind", Option{Text: "v", Prefix: PrefixSingle, Kind: Kind(2), Converter: SetFlag{}}, ErrInvalidKind},
		{"nil converter", Option{Text: "v", Prefix: PrefixSingle}, ErrMissingCallback},
		{"partial funcs", Option{Text: "v", Prefix: PrefixSingle, Converter: Funcs{OnCheck: func(*Call, []string, bool) error { return nil }}}, ErrMissingCallback},
		{"nil funcs pointer", Option{Text: "v", Prefix: PrefixSingle, Converter: nilFuncs}, ErrMissingCallback},
		{"prefix checked first", Option{Prefix: Prefix(-1), Kind: Kind(7)}, ErrInvalidPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := []Option{Long("ok", &flag, SetFlag{}), tt.entry}
			err := Validate(table)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Expected valid table, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			var pe *ParseError
			if errors.As(err, &pe) && pe.Index != 1 {
				t.Errorf("Expected entry index 1, got %d", pe.Index)
			}
			if _, err := NewParser(table); !errors.Is(err, tt.want) {
				t.Errorf("Expected NewParser to reject table with %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateEmptyTable(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Errorf("Expected empty table to be valid, got %v", err)
	}
	p := mustParser(t, nil)
	if _, err := p.ParseArgs([]string{"-x"}, 0); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Expected ErrUnknownOption on empty table, got %v", err)
	}
}

func TestErrorHelpers(t *testing.T) {
	if IsFatal(nil) || IsFatal(ErrEndOfList) || IsFatal(ErrArgumentsFollow) || IsFatal(ErrSkip) {
		t.Error("Expected control signals to be non-fatal")
	}
	if !IsFatal(ErrUnknownOption) || !IsFatal(errors.New("x")) {
		t.Error("Expected errors to be fatal")
	}
	if TypeOf(ErrMissingValue) != ErrorTypeMissingValue || TypeOf(errors.New("x")) != "" {
		t.Error("Unexpected TypeOf result")
	}

	e := &ParseError{Type: ErrorTypeInvalidValue, Message: "invalid argument", Option: "--n", Err: errors.New("bad")}
	if e.Error() != "invalid argument: --n: bad" {
		t.Errorf("Unexpected message '%s'", e.Error())
	}
}

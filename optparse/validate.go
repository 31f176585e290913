package optparse

import (
	"fmt"
	"reflect"
)

// Validate checks the structure of an option table: every entry needs a
// known prefix, a known kind and all three converter phases. It stops
// at the first bad entry.
func Validate(table []Option) error {
	for i := range table {
		o := &table[i]
		switch {
		case !o.Prefix.valid():
			return tableError(ErrorTypeInvalidPrefix, i, fmt.Sprintf("invalid prefix kind %d", int(o.Prefix)))
		case !o.Kind.valid():
			return tableError(ErrorTypeInvalidKind, i, fmt.Sprintf("invalid option kind %d", int(o.Kind)))
		case missingCallback(o.Converter):
			return tableError(ErrorTypeMissingCallback, i, "missing callback")
		}
	}
	return nil
}

func tableError(typ ErrorType, index int, message string) error {
	e := NewParseError(typ, fmt.Sprintf("option table entry %d: %s", index, message))
	e.Index = index
	return e
}

func missingCallback(c Converter) bool {
	if c == nil {
		return true
	}
	switch f := c.(type) {
	case Funcs:
		return !f.complete()
	case *Funcs:
		return f == nil || !f.complete()
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

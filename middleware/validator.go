package middleware

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-optable/optparse"
)

// ValidatorFunc checks the value token of an option before it is extracted
type ValidatorFunc func(c *optparse.Call, value string) error

// NamedValidator associates a human-readable name with a ValidatorFunc for
// clearer error reporting and easier composition.
type NamedValidator struct {
	Name string
	Fn   ValidatorFunc
}

// Custom wraps an arbitrary ValidatorFunc with a name for reporting.
func Custom(name string, fn ValidatorFunc) NamedValidator {
	return NamedValidator{Name: name, Fn: fn}
}

// Validator runs the validators, in order, on the value token handed to
// Extract. A rejected value fails the dispatch with an invalid-value
// error wrapping the *ValidationError. Options that take no value are
// passed through, and with no value token the wrapped converter reports
// the missing value.
//
// Example:
//
//	middleware.WrapOption(table, "--port", middleware.Validator(
//	    middleware.Range(1, 65535),
//	))
func Validator(validators ...NamedValidator) Middleware {
	active := make([]NamedValidator, 0, len(validators))
	for _, v := range validators {
		if v.Name != "" && v.Fn != nil {
			active = append(active, v)
		}
	}

	return func(next optparse.Converter) optparse.Converter {
		return optparse.Funcs{
			OnCheck: next.Check,
			OnExtract: func(c *optparse.Call, rest []string) (int, error) {
				if len(rest) > 0 && (c.Option.ConsumesArgs() || c.Option.IsBare()) {
					for _, v := range active {
						if err := v.Fn(c, rest[0]); err != nil {
							return 0, rejected(v.Name, rest[0], err)
						}
					}
				}
				return next.Extract(c, rest)
			},
			OnFinalize: next.Finalize,
		}
	}
}

func rejected(name, value string, err error) error {
	verr := &ValidationError{}
	if !errors.As(err, &verr) {
		verr = &ValidationError{
			Field:   name,
			Value:   value,
			Message: "validation failed",
			Cause:   err,
		}
	}
	e := optparse.NewParseError(optparse.ErrorTypeInvalidValue, "invalid argument "+strconv.Quote(value))
	e.Err = verr
	return e
}

// Range accepts base-10 integers within [lo, hi]
func Range(lo, hi int64) NamedValidator {
	return Custom("range", func(_ *optparse.Call, value string) error {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		if n < lo || n > hi {
			return fmt.Errorf("%d out of range [%d, %d]", n, lo, hi)
		}
		return nil
	})
}

// OneOf accepts exactly one of values
func OneOf(values ...string) NamedValidator {
	return Custom("one_of", func(_ *optparse.Call, value string) error {
		if slices.Contains(values, value) {
			return nil
		}
		return fmt.Errorf("must be one of %s", strings.Join(values, ", "))
	})
}

// Regex accepts values matching pattern. It panics if pattern does not compile.
func Regex(pattern string) NamedValidator {
	re := regexp.MustCompile(pattern)
	return Custom("regex", func(_ *optparse.Call, value string) error {
		if !re.MatchString(value) {
			return fmt.Errorf("does not match %s", pattern)
		}
		return nil
	})
}

// NonEmpty rejects the empty string
func NonEmpty() NamedValidator {
	return Custom("non_empty", func(_ *optparse.Call, value string) error {
		if value == "" {
			return errors.New("must not be empty")
		}
		return nil
	})
}

// File returns a NamedValidator that ensures the value names an existing file
func File() NamedValidator {
	return Custom("file_exists", func(c *optparse.Call, value string) error {
		if err := validateFileExists(value); err != nil {
			return &ValidationError{
				Field:   optionName(c),
				Value:   value,
				Message: fmt.Sprintf("file validation failed for option '%s'", optionName(c)),
				Cause:   err,
			}
		}
		return nil
	})
}

// Dir returns a NamedValidator that ensures the value names an existing directory
func Dir() NamedValidator {
	return Custom("directory_exists", func(c *optparse.Call, value string) error {
		if err := validateDirectoryExists(value); err != nil {
			return &ValidationError{
				Field:   optionName(c),
				Value:   value,
				Message: fmt.Sprintf("directory validation failed for option '%s'", optionName(c)),
				Cause:   err,
			}
		}
		return nil
	})
}

// validateFileExists checks if a file exists
func validateFileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// validateDirectoryExists checks if a directory exists
func validateDirectoryExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// FileSystemValidator checks that the value names an existing file, or an
// existing directory when dir is set.
func FileSystemValidator(dir bool) Middleware {
	if dir {
		return Validator(Dir())
	}
	return Validator(File())
}

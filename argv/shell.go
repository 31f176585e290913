package argv

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Split tokenizes a shell-style command line into a vector. Quotes and
// backslash escapes are honoured; environment variables are left alone.
func Split(line string) (*Vector, error) {
	p := shellwords.NewParser()
	return split(p, line)
}

// SplitEnv is Split with $VAR expansion from the process environment.
func SplitEnv(line string) (*Vector, error) {
	p := shellwords.NewParser()
	p.ParseEnv = true
	return split(p, line)
}

func split(p *shellwords.Parser, line string) (*Vector, error) {
	words, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("argv: split %q: %w", line, err)
	}
	v := &Vector{}
	for _, w := range words {
		v.Append(w)
	}
	return v, nil
}

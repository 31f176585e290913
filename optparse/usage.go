package optparse

import (
	"fmt"
	"io"
	"strings"
)

// WriteUsage writes one line per table entry: its spellings, the value
// placeholder and the help text, aligned on the widest spelling.
func (p *Parser) WriteUsage(w io.Writer) error {
	if err := p.ready(); err != nil {
		return err
	}

	heads := make([]string, len(p.table))
	width := 0
	for i := range p.table {
		heads[i] = usageHead(&p.table[i])
		width = max(width, len(heads[i]))
	}

	for i := range p.table {
		o := &p.table[i]
		line := "  " + heads[i]
		if help := usageHelp(o); help != "" {
			line += strings.Repeat(" ", width-len(heads[i])) + "   " + help
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Usage is WriteUsage into a string
func (p *Parser) Usage() string {
	var b strings.Builder
	if err := p.WriteUsage(&b); err != nil {
		return ""
	}
	return b.String()
}

func usageHead(o *Option) string {
	var head string
	if o.Text == "" {
		head = o.Prefix.String() + "*"
		if o.Prefix == PrefixNone {
			head = "ARGS..."
		}
	} else {
		head = strings.Join(o.Spellings(), ", ")
	}
	if o.Arg != "" {
		head += " " + o.Arg
	} else if o.ConsumesArgs() {
		head += " VALUE"
	}
	return head
}

func usageHelp(o *Option) string {
	help := o.Help
	if o.IsRequired() {
		if help != "" {
			help += " "
		}
		help += "(required)"
	}
	return help
}

package optparse

import (
	"unicode/utf8"

	"github.com/dzonerzy/go-optable/argv"
)

// splitToken rewrites the glued token at pos, prefix+name with name longer
// than one character, into prefix+first and the remainder. The remainder
// keeps the prefix when the option takes no value, so it is parsed as the
// next option; otherwise it stays bare and becomes the value.
//
// The returned vector is new; entries other than the split one are moved
// into it untouched. work is left as it was.
func splitToken(work *argv.Vector, pos int, prefix Prefix, name string, consumes bool) (*argv.Vector, bool) {
	_, size := utf8.DecodeRuneInString(name)
	if size == 0 || size >= len(name) || pos < 0 || pos >= work.Len() {
		return work, false
	}

	head := prefix.String() + name[:size]
	tail := name[size:]
	if !consumes {
		tail = prefix.String() + tail
	}

	all := work.Tail(0)
	items := make([]string, 0, len(all)+1)
	items = append(items, all[:pos]...)
	items = append(items, head, tail)
	items = append(items, all[pos+1:]...)
	return argv.Adopt(items), true
}

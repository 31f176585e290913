package optparse

import (
	"strings"
	"unicode/utf8"
)

// detectPrefix splits a token into its prefix and option name. A lone
// "-" is positional.
func detectPrefix(token string) (Prefix, string) {
	switch {
	case strings.HasPrefix(token, "--"):
		return PrefixDouble, token[2:]
	case len(token) > 1 && token[0] == '-':
		return PrefixSingle, token[1:]
	default:
		return PrefixNone, token
	}
}

// find returns the index of the first entry matching name under prefix,
// or -1. Entries with empty Text match any name once the prefix agrees.
func find(table []Option, name string, prefix Prefix) int {
	for i := range table {
		o := &table[i]
		if o.Prefix != prefix {
			continue
		}
		if o.Text == "" {
			return i
		}
		switch o.Kind {
		case KindVerbose:
			for _, alias := range strings.Fields(o.Text) {
				if alias == name {
					return i
				}
			}
		case KindShort:
			if r, size := utf8.DecodeRuneInString(name); size > 0 && strings.ContainsRune(o.Text, r) {
				return i
			}
		}
	}
	return -1
}

// complete expands an abbreviated verbose name. It only applies once name
// has at least minSignificant bytes (and never to an empty name), and
// only when exactly one alias
// among the verbose entries sharing prefix starts with name; otherwise
// name is returned unchanged and matching proceeds as usual.
func complete(name string, prefix Prefix, table []Option, minSignificant int) string {
	if len(name) < max(minSignificant, 1) {
		return name
	}

	found := ""
	count := 0
	for i := range table {
		o := &table[i]
		if o.Kind != KindVerbose || o.Prefix != prefix {
			continue
		}
		for _, alias := range strings.Fields(o.Text) {
			if strings.HasPrefix(alias, name) {
				found = alias
				count++
			}
		}
	}

	if count == 1 {
		return found
	}
	return name
}

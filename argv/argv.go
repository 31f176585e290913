// Package argv provides an owned, growable vector of argument strings
// Used by optparse as the token source for every parse call
package argv

import (
	"errors"
	"os"
	"strings"
)

// ErrIndexOutOfRange is returned when an index does not name an entry.
var ErrIndexOutOfRange = errors.New("argv: index out of range")

// Vector is an ordered sequence of owned strings.
//
// The zero value is an empty, unallocated vector. A vector becomes
// "present" once anything is appended or merged into it, or when it is
// produced by Clone; an empty but present vector is distinct from an
// unallocated one. A nil *Vector is treated as absent by every read-only
// method.
type Vector struct {
	items []string
	alloc bool
}

// New returns a vector holding copies of items. New() returns an
// unallocated empty vector.
func New(items ...string) *Vector {
	v := &Vector{}
	for _, s := range items {
		v.Append(s)
	}
	return v
}

// Adopt returns a vector that takes ownership of items without copying.
// The caller must not use items afterwards.
func Adopt(items []string) *Vector {
	if items == nil {
		items = []string{}
	}
	return &Vector{items: items, alloc: true}
}

// FromOS returns the process arguments without the program name.
func FromOS() *Vector {
	if len(os.Args) < 2 {
		return &Vector{}
	}
	return New(os.Args[1:]...)
}

// Append adds an owned copy of text to the end of the vector.
func (v *Vector) Append(text string) {
	v.items = append(v.items, strings.Clone(text))
	v.alloc = true
}

// AppendOpt appends *text. A nil text is the absent marker and never
// creates an entry, so a lazily built vector may stay empty.
func (v *Vector) AppendOpt(text *string) {
	if text == nil {
		return
	}
	v.Append(*text)
}

// Clone returns an independent copy. Cloning an empty vector yields an
// empty but present vector; cloning nil yields nil.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	c := &Vector{items: make([]string, len(v.items)), alloc: true}
	for i, s := range v.items {
		c.items[i] = strings.Clone(s)
	}
	return c
}

// Free releases every entry. It is safe on nil and on an already freed vector.
func (v *Vector) Free() {
	if v == nil {
		return
	}
	clear(v.items)
	v.items = nil
	v.alloc = false
}

// Reset drops every entry but keeps the backing capacity for reuse.
func (v *Vector) Reset() {
	if v == nil {
		return
	}
	clear(v.items)
	v.items = v.items[:0]
	v.alloc = false
}

// RemoveAt deletes the entry at index i and shifts later entries left.
func (v *Vector) RemoveAt(i int) error {
	if v == nil || i < 0 || i >= len(v.items) {
		return ErrIndexOutOfRange
	}
	copy(v.items[i:], v.items[i+1:])
	v.items[len(v.items)-1] = ""
	v.items = v.items[:len(v.items)-1]
	return nil
}

// Merge appends copies of every entry of src. src is never modified.
// Merging into an empty vector marks it present even when src is empty.
func (v *Vector) Merge(src *Vector) {
	if v.Len() == 0 {
		v.alloc = true
	}
	if src.Len() == 0 {
		return
	}
	for _, s := range src.items {
		v.Append(s)
	}
}

// Len returns the number of entries; zero for nil.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// CharLen returns the serialized length: every entry plus one separator.
func (v *Vector) CharLen() int {
	if v == nil {
		return 0
	}
	n := 0
	for _, s := range v.items {
		n += len(s) + 1
	}
	return n
}

// Present reports whether the vector has been materialized.
func (v *Vector) Present() bool {
	return v != nil && v.alloc
}

// At returns entry i, or "" when i is out of range.
func (v *Vector) At(i int) string {
	if v == nil || i < 0 || i >= len(v.items) {
		return ""
	}
	return v.items[i]
}

// Set replaces entry i with an owned copy of s.
func (v *Vector) Set(i int, s string) error {
	if v == nil || i < 0 || i >= len(v.items) {
		return ErrIndexOutOfRange
	}
	v.items[i] = strings.Clone(s)
	return nil
}

// Tail returns a read-only view of the entries from i on. Appending to
// the view never writes into the vector.
func (v *Vector) Tail(i int) []string {
	if v == nil || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i:len(v.items):len(v.items)]
}

// Strings returns a copy of the entries.
func (v *Vector) Strings() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.items))
	copy(out, v.items)
	return out
}

func (v *Vector) String() string {
	if v == nil {
		return ""
	}
	return strings.Join(v.items, " ")
}

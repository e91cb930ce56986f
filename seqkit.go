// Package seqkit ties together the growable sequence, the byte builder and
// the whole-file helpers.
package seqkit

import (
	"seqkit/fsio"
	"seqkit/sbuf"
)

// NewBuilder returns an empty byte builder. The zero value of sbuf.Builder
// works just as well.
func NewBuilder() sbuf.Builder {
	return sbuf.Builder{}
}

// ReadFile appends the contents of path to content. See fsio.ReadEntireFile.
func ReadFile(path string, content *sbuf.Builder) bool {
	return fsio.ReadEntireFile(path, content)
}

// WriteFile writes content to path. See fsio.WriteEntireFile.
func WriteFile(path string, content *sbuf.Builder) bool {
	return fsio.WriteEntireFile(path, content)
}

// Package sbuf provides a byte builder backed by a growable sequence.
package sbuf

import "seqkit/seq"

// Builder accumulates raw bytes. The zero value is ready to use. Content is
// passed through byte for byte, with no terminator and no encoding or
// newline transformation.
type Builder struct {
	inner seq.Seq[byte]
}

// AppendString appends the bytes of s.
func (b *Builder) AppendString(s string) { b.inner.AppendMany([]byte(s)...) }

// AppendBytes appends p verbatim.
func (b *Builder) AppendBytes(p []byte) { b.inner.AppendMany(p...) }

func (b *Builder) AppendByte(c byte) { b.inner.Append(c) }

// Write appends p, satisfying io.Writer. It never fails.
func (b *Builder) Write(p []byte) (int, error) {
	b.inner.AppendMany(p...)
	return len(p), nil
}

// Bytes returns the live accumulated bytes. The view is invalidated by the
// next growing append.
func (b *Builder) Bytes() []byte { return b.inner.Items() }

func (b *Builder) String() string { return string(b.inner.Items()) }

func (b *Builder) Len() int { return b.inner.Len() }

func (b *Builder) Cap() int { return b.inner.Cap() }

// Reset drops the length to zero, keeping capacity.
func (b *Builder) Reset() { b.inner.Reset() }

// Free releases the backing storage.
func (b *Builder) Free() { b.inner.Free() }

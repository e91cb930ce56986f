package seqkit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqkit/seq"
)

func TestBuildWriteReadBack(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "roundtrip.bin")
	in := NewBuilder()
	in.AppendString("line one\n")
	in.AppendBytes([]byte{0, 0xFF, 0})
	in.AppendString("line two\n")

	// act
	wrote := WriteFile(path, &in)
	out := NewBuilder()
	read := ReadFile(path, &out)

	// assert
	assert.True(t, wrote)
	assert.True(t, read)
	assert.Equal(t, in.Bytes(), out.Bytes())
	assert.Equal(t, in.Len(), out.Len())
}

func TestSequenceFeedsBuilder(t *testing.T) {
	// arrange
	var words seq.Seq[string]
	words.AppendMany("growable", "sequences")
	words.Prepend("two")

	// act
	b := NewBuilder()
	for i := 0; i < words.Len(); i++ {
		if i > 0 {
			b.AppendByte(' ')
		}
		b.AppendString(words.At(i))
	}

	// assert
	assert.Equal(t, "two growable sequences", b.String())
}

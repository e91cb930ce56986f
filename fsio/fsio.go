// Package fsio provides whole-file helpers. Failures are reported as a
// boolean result plus a human-readable diagnostic on stderr; the caller
// decides how to proceed.
package fsio

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"seqkit/sbuf"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger replaces the diagnostics destination.
func SetLogger(l *slog.Logger) { logger = l }

// ReadEntireFile appends the full contents of filepath to content. The file
// size is determined by seeking to the end and back. A short read without a
// stream error counts as acceptable completion. The builder is modified only
// on the success path, and the file handle is released on every path.
// Returns false without a diagnostic when filepath is empty or content is
// nil.
func ReadEntireFile(filepath string, content *sbuf.Builder) bool {
	if filepath == "" || content == nil {
		return false
	}

	f, err := os.Open(filepath)
	if err != nil {
		logger.Error("failed to open file", "path", filepath, "err", err)
		return false
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		logger.Error("failed to get to the end of file", "path", filepath, "err", err)
		return false
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		logger.Error("failed to get to the start of file", "path", filepath, "err", err)
		return false
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		logger.Error("error while reading file", "path", filepath, "err", err)
		return false
	}

	content.AppendBytes(buf[:n])
	return true
}

// WriteEntireFile writes the full contents of content to filepath, creating
// or truncating it. A short write is a failure. The file handle is closed on
// every path. Returns false without a diagnostic when filepath is empty or
// content is nil.
func WriteEntireFile(filepath string, content *sbuf.Builder) bool {
	if filepath == "" || content == nil {
		return false
	}

	f, err := os.Create(filepath)
	if err != nil {
		logger.Error("failed to open file for writing", "path", filepath, "err", err)
		return false
	}
	defer f.Close()

	n, err := f.Write(content.Bytes())
	if err != nil || n < content.Len() {
		logger.Error("error while writing content", "path", filepath, "written", n, "err", err)
		return false
	}

	return true
}

// ABOUTME: Line-delimited JSON reading and writing
// ABOUTME: Buffered encoder without HTML escaping, scanner with a large line limit
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const (
	defaultBufSize = 64 * 1024        // 64KB
	maxLineSize    = 16 * 1024 * 1024 // 16MB
)

// Writer encodes one value per line. Call Flush when done.
type Writer struct {
	w   *bufio.Writer
	enc *json.Encoder
	n   int
}

// NewWriter wraps w in a buffered JSONL encoder.
func NewWriter(w io.Writer) *Writer {
	bw := bufio.NewWriterSize(w, defaultBufSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Writer{w: bw, enc: enc}
}

// Write encodes v followed by a newline.
func (w *Writer) Write(v interface{}) error {
	if err := w.enc.Encode(v); err != nil {
		return fmt.Errorf("jsonl: encode line %d: %w", w.n+1, err)
	}
	w.n++
	return nil
}

// Count returns the number of lines written so far.
func (w *Writer) Count() int {
	return w.n
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteFile creates (or truncates) path and writes items to it, one per line.
// An empty slice produces an empty file.
func WriteFile[T any](path string, items []T) error {
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return err
	}

	w := NewWriter(f)
	for _, item := range items {
		if err := w.Write(item); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Scan calls fn for every non-blank line of r, in order. The slice passed
// to fn is only valid until fn returns.
func Scan(r io.Reader, fn func(lineNo int, line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, defaultBufSize), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ABOUTME: Record formatter turning a text file into line-delimited JSON
// ABOUTME: Every input line becomes one {"text","utc"} record, in input order
package formatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/jsonl"
	"github.com/harper/corpusprep/internal/models"
)

// Formatter decorates text lines with synthetic timestamps.
type Formatter struct {
	gen *TimestampGenerator
}

// New creates a Formatter. A nil generator gets the defaults.
func New(gen *TimestampGenerator) *Formatter {
	if gen == nil {
		gen = NewTimestampGenerator()
	}
	return &Formatter{gen: gen}
}

// Format reads in line by line and writes one record per line to out.
// Blank lines are kept. Returns the number of records written; on error
// the records already flushed stay in out.
func (f *Formatter) Format(in io.Reader, out io.Writer) (int, error) {
	r := bufio.NewReader(in)
	w := jsonl.NewWriter(out)

	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if werr := w.Write(models.NewRecord(line, f.gen.Next())); werr != nil {
				_ = w.Flush()
				return w.Count(), fmt.Errorf("%w: %w", faults.ErrIO, werr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = w.Flush()
			return w.Count(), fmt.Errorf("%w: reading input: %w", faults.ErrIO, err)
		}
	}

	if err := w.Flush(); err != nil {
		return w.Count(), fmt.Errorf("%w: writing output: %w", faults.ErrIO, err)
	}
	return w.Count(), nil
}

// FormatFile formats inPath into outPath, creating or truncating outPath.
// The input is never modified.
func (f *Formatter) FormatFile(inPath, outPath string) (int, error) {
	in, err := os.Open(inPath) // #nosec G304
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %w", faults.ErrFileNotFound, err)
		}
		return 0, fmt.Errorf("%w: opening input: %w", faults.ErrIO, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(outPath) // #nosec G304
	if err != nil {
		return 0, fmt.Errorf("%w: creating output: %w", faults.ErrIO, err)
	}

	n, err := f.Format(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: closing output: %w", faults.ErrIO, cerr)
	}
	return n, err
}

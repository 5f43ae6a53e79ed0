// ABOUTME: Error taxonomy shared by the formatter, partitioner and store
// ABOUTME: Sentinel errors plus classification into kinds and exit codes
package faults

import (
	"errors"
	"io/fs"
)

// Sentinel errors. Callers wrap these with fmt.Errorf("...: %w", ...) and
// test for them with errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrIO               = errors.New("i/o error")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrDirectory        = errors.New("directory error")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Kind is the coarse category of a failure.
type Kind string

const (
	KindUnknown          Kind = "unknown"
	KindFileNotFound     Kind = "file_not_found"
	KindIO               Kind = "io"
	KindDatasetNotFound  Kind = "dataset_not_found"
	KindDirectory        Kind = "directory"
	KindInvalidParameter Kind = "invalid_parameter"
)

// Classify maps err onto a Kind. Sentinels are checked before the generic
// filesystem error types, so ErrIO wrapped around a missing output parent
// reports as io and not as a missing input.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	switch {
	case errors.Is(err, ErrInvalidParameter):
		return KindInvalidParameter
	case errors.Is(err, ErrDatasetNotFound):
		return KindDatasetNotFound
	case errors.Is(err, ErrDirectory):
		return KindDirectory
	case errors.Is(err, ErrFileNotFound):
		return KindFileNotFound
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, fs.ErrNotExist):
		return KindFileNotFound
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return KindIO
	}
	return KindUnknown
}

// ExitCode returns the process exit status for a kind. Zero is never
// returned: every kind represents a failure.
func (k Kind) ExitCode() int {
	switch k {
	case KindFileNotFound:
		return 2
	case KindIO:
		return 3
	case KindDatasetNotFound:
		return 4
	case KindDirectory:
		return 5
	case KindInvalidParameter:
		return 6
	default:
		return 1
	}
}

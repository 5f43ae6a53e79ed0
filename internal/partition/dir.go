// ABOUTME: Output directory lifecycle for the partitioner
// ABOUTME: Replace mode wipes and recreates, no-clobber mode refuses non-empty dirs
package partition

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/harper/corpusprep/internal/faults"
)

// Mode selects what happens to an existing output directory.
type Mode int

const (
	// ModeReplace deletes the directory and everything under it before
	// writing. Callers accept that existing contents are destroyed.
	ModeReplace Mode = iota
	// ModeNoClobber refuses to write into an existing non-empty directory.
	ModeNoClobber
)

func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeNoClobber:
		return "no-clobber"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// prepareDir leaves dir existing and empty, or fails with ErrDirectory.
func prepareDir(dir string, mode Mode) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to create
	case err != nil:
		return fmt.Errorf("%w: stat %s: %w", faults.ErrDirectory, dir, err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s exists and is not a directory", faults.ErrDirectory, dir)
	case mode == ModeNoClobber:
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("%w: reading %s: %w", faults.ErrDirectory, dir, err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: %s is not empty (%d entries)", faults.ErrDirectory, dir, len(entries))
		}
		return nil
	default:
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: removing %s: %w", faults.ErrDirectory, dir, err)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", faults.ErrDirectory, dir, err)
	}
	return nil
}

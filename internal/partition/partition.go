// ABOUTME: Dataset partitioner writing train/dev/test JSONL files
// ABOUTME: Fetches a dataset, shuffles it with a seed, and writes three splits
package partition

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/jsonl"
	"github.com/harper/corpusprep/internal/models"
)

// Output file names, in write order.
const (
	TrainFile = "train.jsonl"
	DevFile   = "dev.jsonl"
	TestFile  = "test.jsonl"
)

// DefaultFraction is the share of examples given to each of dev and test.
const DefaultFraction = 0.2

// Source is the read side of a dataset store. An unknown name must return
// an error wrapping faults.ErrDatasetNotFound.
type Source interface {
	GetDataset(name string) ([]models.Example, error)
}

// Options configures a partition run.
type Options struct {
	Dataset   string
	OutputDir string
	Fraction  float64
	Seed      int64
	Mode      Mode
}

// DefaultOptions returns Options with the default fraction, seed 0 and
// replace mode.
func DefaultOptions(dataset, outputDir string) Options {
	return Options{
		Dataset:   dataset,
		OutputDir: outputDir,
		Fraction:  DefaultFraction,
	}
}

// Validate checks the options that can be checked before the dataset size
// is known.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Dataset) == "" {
		return fmt.Errorf("%w: dataset name is required", faults.ErrInvalidParameter)
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		return fmt.Errorf("%w: output directory is required", faults.ErrInvalidParameter)
	}
	if o.Mode != ModeReplace && o.Mode != ModeNoClobber {
		return fmt.Errorf("%w: unknown directory mode %v", faults.ErrInvalidParameter, o.Mode)
	}
	return ValidateFraction(o.Fraction)
}

// Result describes a completed run.
type Result struct {
	Dataset   string   `json:"dataset"`
	OutputDir string   `json:"output_dir"`
	Total     int      `json:"total"`
	Sizes     Sizes    `json:"sizes"`
	Files     []string `json:"files"`
}

// Run partitions the named dataset from src into opts.OutputDir.
//
// The sequence is not atomic: a failure after the directory has been
// prepared leaves it partially populated.
func Run(src Source, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	examples, err := src.GetDataset(opts.Dataset)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %q: %w", opts.Dataset, err)
	}
	log.Debug("dataset loaded", "dataset", opts.Dataset, "examples", len(examples))

	parts, err := Split(examples, opts.Fraction, opts.Seed)
	if err != nil {
		return nil, err
	}

	if err := prepareDir(opts.OutputDir, opts.Mode); err != nil {
		return nil, err
	}
	log.Debug("output directory ready", "dir", opts.OutputDir, "mode", opts.Mode)

	result := &Result{
		Dataset:   opts.Dataset,
		OutputDir: opts.OutputDir,
		Total:     len(examples),
		Sizes:     parts.Sizes(),
	}

	splits := []struct {
		name     string
		examples []models.Example
	}{
		{TrainFile, parts.Train},
		{DevFile, parts.Dev},
		{TestFile, parts.Test},
	}
	for _, s := range splits {
		path := filepath.Join(opts.OutputDir, s.name)
		if err := jsonl.WriteFile(path, s.examples); err != nil {
			return nil, fmt.Errorf("%w: writing %s: %w", faults.ErrIO, path, err)
		}
		result.Files = append(result.Files, path)
		log.Debug("split written", "file", path, "examples", len(s.examples))
	}

	return result, nil
}

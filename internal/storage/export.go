// ABOUTME: Import and export of datasets as JSONL or YAML files
// ABOUTME: Works against any Store so both backends share it
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/jsonl"
	"github.com/harper/corpusprep/internal/models"
)

// Export formats.
const (
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// ExportData represents a complete dataset dump
type ExportData struct {
	Version    string        `yaml:"version" json:"version"`
	ExportedAt string        `yaml:"exported_at" json:"exported_at"`
	Tool       string        `yaml:"tool" json:"tool"`
	Dataset    string        `yaml:"dataset" json:"dataset"`
	Count      int           `yaml:"count" json:"count"`
	Examples   []interface{} `yaml:"examples" json:"examples"`
}

// Export collects every example of name.
func Export(r DatasetReader, name string) (*ExportData, error) {
	examples, err := r.GetDataset(name)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "corpusprep",
		Dataset:    name,
		Count:      len(examples),
		Examples:   make([]interface{}, 0, len(examples)),
	}
	for i, ex := range examples {
		v, err := ex.Decode()
		if err != nil {
			return nil, fmt.Errorf("decoding example %d: %w", i, err)
		}
		data.Examples = append(data.Examples, v)
	}
	return data, nil
}

// ExportToYAML writes the dataset to a YAML file
func ExportToYAML(r DatasetReader, name, outputPath string) (int, error) {
	data, err := Export(r, name)
	if err != nil {
		return 0, err
	}

	file, err := createOutput(outputPath)
	if err != nil {
		return 0, err
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return 0, fmt.Errorf("%w: failed to encode YAML: %w", faults.ErrIO, err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("%w: failed to encode YAML: %w", faults.ErrIO, err)
	}
	return data.Count, nil
}

// ExportToJSONL writes the dataset one example per line, in store order.
func ExportToJSONL(r DatasetReader, name, outputPath string) (int, error) {
	examples, err := r.GetDataset(name)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return 0, fmt.Errorf("%w: failed to create output directory: %w", faults.ErrIO, err)
	}
	if err := jsonl.WriteFile(outputPath, examples); err != nil {
		return 0, fmt.Errorf("%w: writing %s: %w", faults.ErrIO, outputPath, err)
	}
	return len(examples), nil
}

// ExportTo dispatches on format.
func ExportTo(r DatasetReader, name, format, outputPath string) (int, error) {
	switch format {
	case FormatJSONL, "":
		return ExportToJSONL(r, name, outputPath)
	case FormatYAML, "yml":
		return ExportToYAML(r, name, outputPath)
	default:
		return 0, fmt.Errorf("%w: unknown export format %q (use jsonl or yaml)", faults.ErrInvalidParameter, format)
	}
}

func createOutput(outputPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create output directory: %w", faults.ErrIO, err)
	}
	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create output file: %w", faults.ErrIO, err)
	}
	return file, nil
}

// ReadExamples parses one JSON example per non-blank line of r.
func ReadExamples(r io.Reader) ([]models.Example, error) {
	var examples []models.Example
	err := jsonl.Scan(r, func(lineNo int, line []byte) error {
		ex, err := models.ParseExample(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", faults.ErrInvalidParameter, lineNo, err)
		}
		examples = append(examples, ex)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return examples, nil
}

// ReadExamplesFile reads a JSONL file of examples.
func ReadExamplesFile(path string) ([]models.Example, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", faults.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: opening %s: %w", faults.ErrIO, path, err)
	}
	defer func() { _ = f.Close() }()

	examples, err := ReadExamples(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return examples, nil
}

// Import reads path and appends its examples to the named dataset.
func Import(s Store, name, path string) (int, error) {
	examples, err := ReadExamplesFile(path)
	if err != nil {
		return 0, err
	}
	return s.AddExamples(name, examples)
}

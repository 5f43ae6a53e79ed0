// ABOUTME: Dataset metadata and name validation
// ABOUTME: Shared by every storage backend and the CLI listing
package models

import (
	"fmt"
	"strings"
	"time"
)

// DatasetInfo summarises a named collection of examples.
type DatasetInfo struct {
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateDatasetName rejects names that cannot be stored as a key or
// used safely on a command line.
func ValidateDatasetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("dataset name cannot be empty")
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("dataset name %q has surrounding whitespace", name)
	}
	if strings.ContainsAny(name, ":\n\r\t") {
		return fmt.Errorf("dataset name %q contains a reserved character", name)
	}
	return nil
}

// ABOUTME: Tests for the dataset command group
// ABOUTME: Covers import, list, export and drop against a temp sqlite store

package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/models"
)

func TestNewDatasetCmd(t *testing.T) {
	cmd := NewDatasetCmd()

	want := map[string]bool{"import": false, "list": false, "drop": false, "export": false}
	for _, sub := range cmd.Commands() {
		want[strings.Fields(sub.Use)[0]] = true
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not found", name)
		}
	}
}

func listDatasets(t *testing.T) []models.DatasetInfo {
	t.Helper()
	output, err := runCLI(t, "dataset", "list", "--json")
	if err != nil {
		t.Fatalf("dataset list failed: %v", err)
	}
	var infos []models.DatasetInfo
	if err := json.Unmarshal([]byte(output), &infos); err != nil {
		t.Fatalf("invalid JSON %q: %v", output, err)
	}
	return infos
}

func TestDatasetCmd_ImportAndList(t *testing.T) {
	dir := isolateEnv(t)

	if infos := listDatasets(t); len(infos) != 0 {
		t.Fatalf("expected empty store, got %+v", infos)
	}

	output, err := runCLI(t, "dataset", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "No datasets found") {
		t.Errorf("unexpected empty listing: %q", output)
	}

	importDataset(t, dir, "skills", 3)
	importDataset(t, dir, "skills", 2)
	importDataset(t, dir, "alpha", 1)

	infos := listDatasets(t)
	if len(infos) != 2 {
		t.Fatalf("got %d datasets, want 2", len(infos))
	}
	if infos[0].Name != "alpha" || infos[1].Name != "skills" || infos[1].Count != 5 {
		t.Errorf("unexpected listing: %+v", infos)
	}

	output, err = runCLI(t, "dataset", "list")
	if err != nil {
		t.Fatal(err)
	}
	// go-pretty upper-cases headers and footers
	for _, want := range []string{"name", "skills", "alpha", "2 dataset(s)"} {
		if !strings.Contains(strings.ToLower(output), want) {
			t.Errorf("table output missing %q:\n%s", want, output)
		}
	}
}

func TestDatasetCmd_ImportErrors(t *testing.T) {
	dir := isolateEnv(t)

	_, err := runCLI(t, "dataset", "import", "skills", filepath.Join(dir, "missing.jsonl"))
	if faults.Classify(err) != faults.KindFileNotFound {
		t.Errorf("expected file not found, got %v", err)
	}

	bad := filepath.Join(dir, "bad.jsonl")
	if err := os.WriteFile(bad, []byte("{not json}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = runCLI(t, "dataset", "import", "skills", bad)
	if faults.Classify(err) != faults.KindInvalidParameter {
		t.Errorf("expected invalid parameter, got %v", err)
	}
}

func TestDatasetCmd_Export(t *testing.T) {
	dir := isolateEnv(t)
	importDataset(t, dir, "skills", 3)

	jsonlOut := filepath.Join(dir, "export", "skills.jsonl")
	if _, err := runCLI(t, "dataset", "export", "skills", "--output", jsonlOut); err != nil {
		t.Fatalf("export jsonl failed: %v", err)
	}
	if got := countLines(t, jsonlOut); got != 3 {
		t.Errorf("jsonl export has %d lines, want 3", got)
	}

	yamlOut := filepath.Join(dir, "skills.yaml")
	if _, err := runCLI(t, "dataset", "export", "skills", "-f", "yaml", "-o", yamlOut); err != nil {
		t.Fatalf("export yaml failed: %v", err)
	}
	raw, err := os.ReadFile(yamlOut)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Dataset  string        `yaml:"dataset"`
		Count    int           `yaml:"count"`
		Examples []interface{} `yaml:"examples"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if doc.Dataset != "skills" || doc.Count != 3 || len(doc.Examples) != 3 {
		t.Errorf("unexpected YAML export: %+v", doc)
	}

	_, err = runCLI(t, "dataset", "export", "skills", "-f", "csv", "-o", filepath.Join(dir, "x.csv"))
	if faults.Classify(err) != faults.KindInvalidParameter {
		t.Errorf("expected invalid parameter for csv, got %v", err)
	}
}

func TestDatasetCmd_Drop(t *testing.T) {
	dir := isolateEnv(t)
	importDataset(t, dir, "skills", 2)

	output, err := runCLI(t, "dataset", "drop", "skills")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "--confirm") {
		t.Errorf("drop without --confirm should explain itself: %q", output)
	}
	if len(listDatasets(t)) != 1 {
		t.Fatal("drop without --confirm must not delete")
	}

	if _, err := runCLI(t, "dataset", "drop", "skills", "--confirm"); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	if len(listDatasets(t)) != 0 {
		t.Error("dataset should be gone")
	}

	_, err = runCLI(t, "dataset", "drop", "skills", "--confirm")
	if faults.Classify(err) != faults.KindDatasetNotFound {
		t.Errorf("expected dataset not found, got %v", err)
	}
}

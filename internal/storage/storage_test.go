// ABOUTME: Tests for backend selection in Open
// ABOUTME: Uses a temp sqlite file so no global state is touched
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harper/corpusprep/internal/config"
	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/storage/sqlite"
)

func TestOpenSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "store.db")
	cfg := &config.Config{StoreBackend: config.BackendSQLite, DBPath: dbPath}

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	sq, ok := s.(*sqlite.Storage)
	if !ok {
		t.Fatalf("expected *sqlite.Storage, got %T", s)
	}
	if sq.Path() != dbPath {
		t.Errorf("Path = %q, want %q", sq.Path(), dbPath)
	}
}

func TestOpenDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s, err := Open(&config.Config{StoreBackend: config.BackendSQLite})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if got := s.(*sqlite.Storage).Path(); got != sqlite.DefaultDBPath() {
		t.Errorf("Path = %q, want %q", got, sqlite.DefaultDBPath())
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(&config.Config{StoreBackend: "postgres"})
	if !errors.Is(err, faults.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestCharmConfig(t *testing.T) {
	cfg := &config.Config{
		CharmHost:      "charm.example.com",
		CharmDBName:    "datasets",
		AutoSync:       false,
		SyncRetries:    5,
		SyncRetryDelay: time.Second,
	}
	cc := CharmConfig(cfg)
	if cc.Host != "charm.example.com" || cc.DBName != "datasets" {
		t.Errorf("unexpected host/db: %+v", cc)
	}
	if cc.AutoSync {
		t.Error("AutoSync should be false")
	}
	if cc.SyncRetries != 5 || cc.SyncRetryDelay != time.Second {
		t.Errorf("unexpected retry settings: %+v", cc)
	}
}

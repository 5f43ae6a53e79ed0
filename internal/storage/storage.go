// ABOUTME: Dataset store abstraction over the SQLite and Charm backends
// ABOUTME: Open picks the backend named by configuration
package storage

import (
	"fmt"

	"github.com/harper/corpusprep/internal/charm"
	"github.com/harper/corpusprep/internal/config"
	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/models"
	"github.com/harper/corpusprep/internal/storage/sqlite"
)

// DatasetReader fetches a named dataset. An unknown name yields an error
// wrapping faults.ErrDatasetNotFound.
type DatasetReader interface {
	GetDataset(name string) ([]models.Example, error)
}

// Store is the full annotation store used by the CLI and MCP server.
type Store interface {
	DatasetReader
	AddExamples(name string, examples []models.Example) (int, error)
	ListDatasets() ([]models.DatasetInfo, error)
	DropDataset(name string) error
	Close() error
}

var (
	_ Store = (*sqlite.Storage)(nil)
	_ Store = (*charm.Client)(nil)
)

// Open connects to the store configured in cfg.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite, "":
		path := cfg.DBPath
		if path == "" {
			path = sqlite.DefaultDBPath()
		}
		return sqlite.NewStorageWithPath(path)
	case config.BackendCharm:
		return charm.NewClient(CharmConfig(cfg))
	default:
		return nil, fmt.Errorf("%w: unknown store backend %q", faults.ErrInvalidParameter, cfg.StoreBackend)
	}
}

// CharmConfig maps the application config onto the charm client config.
func CharmConfig(cfg *config.Config) *charm.Config {
	return &charm.Config{
		Host:           cfg.CharmHost,
		DBName:         cfg.CharmDBName,
		AutoSync:       cfg.AutoSync,
		SyncRetries:    cfg.SyncRetries,
		SyncRetryDelay: cfg.SyncRetryDelay,
	}
}

// ABOUTME: Charm KV client wrapper for cloud-synced dataset storage
// ABOUTME: Opens the KV store, syncs with retry, and exposes account info
package charm

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"

	"github.com/harper/corpusprep/internal/util"
)

// Key prefixes for different entity types
const (
	DatasetPrefix = "dataset:"
	ExamplePrefix = "example:"
)

// Config holds charm client configuration
type Config struct {
	Host           string
	DBName         string
	AutoSync       bool
	SyncRetries    int
	SyncRetryDelay time.Duration
}

// DefaultConfig returns default configuration for charm client
func DefaultConfig() *Config {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = "cloud.charm.sh"
	}
	return &Config{
		Host:           host,
		DBName:         "corpusprep",
		AutoSync:       true,
		SyncRetries:    3,
		SyncRetryDelay: 500 * time.Millisecond,
	}
}

// kvStore is the subset of *kv.KV the client uses.
type kvStore interface {
	Set(key, value []byte) error
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	Keys() ([][]byte, error)
	Sync() error
	Reset() error
	Close() error
}

// errKeyNotFound is what the KV reports for a missing key.
var errKeyNotFound = badger.ErrKeyNotFound

// Client wraps charm KV for storage operations
type Client struct {
	kv     kvStore
	config *Config
	mu     sync.Mutex
}

// NewClient creates a new charm client with the given config
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	// Set CHARM_HOST before opening KV
	if err := os.Setenv("CHARM_HOST", cfg.Host); err != nil {
		return nil, fmt.Errorf("failed to set CHARM_HOST: %w", err)
	}

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	c := newClientWithKV(db, cfg)

	// Pull remote data on startup
	if cfg.AutoSync {
		_ = c.Sync()
	}

	return c, nil
}

func newClientWithKV(store kvStore, cfg *Config) *Client {
	return &Client{kv: store, config: cfg}
}

// Close closes the KV database
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

// syncIfEnabled syncs to cloud after writes
func (c *Client) syncIfEnabled() {
	if c.config.AutoSync {
		_ = c.syncLocked()
	}
}

// ID returns the charm user ID
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// Host returns the configured charm host
func (c *Client) Host() string {
	return c.config.Host
}

// Sync manually triggers a sync with the cloud, retrying with backoff
func (c *Client) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncLocked()
}

func (c *Client) syncLocked() error {
	return util.Retry(c.config.SyncRetries, c.config.SyncRetryDelay, c.kv.Sync)
}

// Reset wipes all local data (nuclear option)
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// GetAuthorizedKeys returns the list of linked devices/keys
func (c *Client) GetAuthorizedKeys() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.AuthorizedKeys()
}

// DatasetKey generates the metadata key for a dataset
func DatasetKey(name string) string {
	return DatasetPrefix + name
}

// ExampleKeyPrefix is the prefix shared by every example of a dataset
func ExampleKeyPrefix(name string) string {
	return ExamplePrefix + name + ":"
}

// ExampleKey generates the key of the example at position pos. Positions
// are zero padded so lexical key order equals insertion order.
func ExampleKey(name string, pos int) string {
	return fmt.Sprintf("%s%010d", ExampleKeyPrefix(name), pos)
}

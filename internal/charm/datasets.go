// ABOUTME: Dataset store operations on top of the Charm KV client
// ABOUTME: One metadata key per dataset plus one zero-padded key per example
package charm

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/models"
)

// GetDataset returns the examples of name in insertion order.
func (c *Client) GetDataset(name string) ([]models.Example, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.datasetInfoLocked(name); err != nil {
		return nil, err
	}

	keys, err := c.keysLocked(ExampleKeyPrefix(name))
	if err != nil {
		return nil, err
	}

	examples := make([]models.Example, 0, len(keys))
	for _, key := range keys {
		data, err := c.kv.Get([]byte(key))
		if errors.Is(err, errKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		examples = append(examples, models.Example(data))
	}
	return examples, nil
}

// AddExamples appends examples to name, creating the dataset if needed.
// The cloud sync runs once after every example has been written.
func (c *Client) AddExamples(name string, examples []models.Example) (int, error) {
	if err := models.ValidateDatasetName(name); err != nil {
		return 0, fmt.Errorf("%w: %w", faults.ErrInvalidParameter, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := c.datasetInfoLocked(name)
	if errors.Is(err, faults.ErrDatasetNotFound) {
		info = &models.DatasetInfo{Name: name, CreatedAt: time.Now().UTC()}
	} else if err != nil {
		return 0, err
	}

	for i, ex := range examples {
		key := ExampleKey(name, info.Count+i)
		if err := c.kv.Set([]byte(key), ex); err != nil {
			return i, fmt.Errorf("failed to set key %s: %w", key, err)
		}
	}
	info.Count += len(examples)

	data, err := json.Marshal(info)
	if err != nil {
		return len(examples), fmt.Errorf("failed to marshal dataset info: %w", err)
	}
	if err := c.kv.Set([]byte(DatasetKey(name)), data); err != nil {
		return len(examples), fmt.Errorf("failed to set key %s: %w", DatasetKey(name), err)
	}

	c.syncIfEnabled()
	return len(examples), nil
}

// ListDatasets returns every dataset, ordered by name.
func (c *Client) ListDatasets() ([]models.DatasetInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.keysLocked(DatasetPrefix)
	if err != nil {
		return nil, err
	}

	infos := make([]models.DatasetInfo, 0, len(keys))
	for _, key := range keys {
		info, err := c.datasetInfoLocked(strings.TrimPrefix(key, DatasetPrefix))
		if errors.Is(err, faults.ErrDatasetNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

// DropDataset deletes the dataset metadata and all of its examples.
func (c *Client) DropDataset(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.datasetInfoLocked(name); err != nil {
		return err
	}

	keys, err := c.keysLocked(ExampleKeyPrefix(name))
	if err != nil {
		return err
	}
	keys = append(keys, DatasetKey(name))

	for _, key := range keys {
		if err := c.kv.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", key, err)
		}
	}

	c.syncIfEnabled()
	return nil
}

func (c *Client) datasetInfoLocked(name string) (*models.DatasetInfo, error) {
	data, err := c.kv.Get([]byte(DatasetKey(name)))
	if errors.Is(err, errKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", faults.ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", name, err)
	}

	var info models.DatasetInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decoding dataset %s: %w", name, err)
	}
	if info.Name == "" {
		info.Name = name
	}
	return &info, nil
}

func (c *Client) keysLocked(prefix string) ([]string, error) {
	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var result []string
	for _, key := range keys {
		if k := string(key); strings.HasPrefix(k, prefix) {
			result = append(result, k)
		}
	}
	sort.Strings(result)
	return result, nil
}

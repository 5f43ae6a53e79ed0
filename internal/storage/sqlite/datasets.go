// ABOUTME: Dataset and example storage operations for SQLite
// ABOUTME: Ordered append, full retrieval, listing with counts, and drop
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/models"
)

// DatasetStore handles dataset persistence
type DatasetStore struct {
	db *DB
}

// NewDatasetStore creates a new DatasetStore
func NewDatasetStore(db *DB) *DatasetStore {
	return &DatasetStore{db: db}
}

// lookupID returns the id of the named dataset, or "" if it does not exist.
func lookupID(q interface {
	QueryRow(query string, args ...interface{}) *sql.Row
}, name string) (string, error) {
	var id string
	err := q.QueryRow("SELECT id FROM datasets WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

// Append adds examples to the end of the named dataset, creating the
// dataset if needed. All rows are written in one transaction.
func (s *DatasetStore) Append(name string, examples []models.Example) (int, error) {
	if err := models.ValidateDatasetName(name); err != nil {
		return 0, fmt.Errorf("%w: %w", faults.ErrInvalidParameter, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := lookupID(tx, name)
	if err != nil {
		return 0, err
	}
	if id == "" {
		id = uuid.New().String()
		if _, err := tx.Exec("INSERT INTO datasets (id, name, created_at) VALUES (?, ?, ?)",
			id, name, time.Now().UTC()); err != nil {
			return 0, fmt.Errorf("creating dataset: %w", err)
		}
	}

	var next int
	if err := tx.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM examples WHERE dataset_id = ?", id).Scan(&next); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare("INSERT INTO examples (id, dataset_id, position, content) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	for i, ex := range examples {
		if _, err := stmt.Exec(uuid.New().String(), id, next+i, string(ex)); err != nil {
			return 0, fmt.Errorf("inserting example %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(examples), nil
}

// Examples returns every example of the named dataset in insertion order.
func (s *DatasetStore) Examples(name string) ([]models.Example, error) {
	id, err := lookupID(s.db, name)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: %s", faults.ErrDatasetNotFound, name)
	}

	rows, err := s.db.Query(`
		SELECT content
		FROM examples
		WHERE dataset_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	examples := []models.Example{}
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		examples = append(examples, models.Example(content))
	}
	return examples, rows.Err()
}

// List returns all datasets with their example counts, ordered by name.
func (s *DatasetStore) List() ([]models.DatasetInfo, error) {
	rows, err := s.db.Query(`
		SELECT d.name, d.created_at, COUNT(e.id)
		FROM datasets d
		LEFT JOIN examples e ON e.dataset_id = d.id
		GROUP BY d.id
		ORDER BY d.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var infos []models.DatasetInfo
	for rows.Next() {
		var (
			info      models.DatasetInfo
			createdAt interface{}
		)
		if err := rows.Scan(&info.Name, &createdAt, &info.Count); err != nil {
			return nil, err
		}
		info.CreatedAt = scanTime(createdAt)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Drop deletes the named dataset and its examples.
func (s *DatasetStore) Drop(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := lookupID(tx, name)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: %s", faults.ErrDatasetNotFound, name)
	}

	if _, err := tx.Exec("DELETE FROM examples WHERE dataset_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM datasets WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// timeLayouts are the encodings a DATETIME column may come back in when
// the driver does not convert it itself.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// scanTime converts a scanned DATETIME value to time.Time. Unparseable
// values give the zero time.
func scanTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return scanTime(string(t))
	}
	return time.Time{}
}

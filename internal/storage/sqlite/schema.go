// ABOUTME: SQLite database schema for the dataset store
// ABOUTME: Named datasets and their ordered, opaque JSON examples
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Named example collections
CREATE TABLE IF NOT EXISTS datasets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Examples, kept in insertion order per dataset
CREATE TABLE IF NOT EXISTS examples (
    id TEXT PRIMARY KEY,
    dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    content TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (dataset_id, position)
);

CREATE INDEX IF NOT EXISTS idx_examples_dataset ON examples(dataset_id, position);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1

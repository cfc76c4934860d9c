// Package sqlite provides a content-addressed cache for extraction
// results. Documents are keyed by the SHA-256 of the input bytes, so a
// re-run over unchanged files skips extraction entirely.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docstract"
)

const schema = `
CREATE TABLE IF NOT EXISTS extraction_cache (
	content_hash TEXT PRIMARY KEY,
	document     TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);
`

// Cache is a SQLite-backed extraction result cache.
type Cache struct {
	db   *sql.DB
	path string
}

// NewCache opens the cache database in dataDir, creating it if needed.
// An empty dataDir defaults to the user cache directory.
func NewCache(dataDir string) (*Cache, error) {
	if dataDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("getting cache directory: %w", err)
		}
		dataDir = filepath.Join(base, "docstract")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Get returns the cached document for a content hash, or ok=false on a
// miss. An undecodable row is treated as a miss and removed.
func (c *Cache) Get(ctx context.Context, contentHash string) (*docstract.Document, bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		"SELECT document FROM extraction_cache WHERE content_hash = ?", contentHash,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	var doc docstract.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		c.db.ExecContext(ctx, "DELETE FROM extraction_cache WHERE content_hash = ?", contentHash) //nolint:errcheck
		return nil, false, nil
	}

	return &doc, true, nil
}

// Put stores a document under a content hash, replacing any previous
// entry.
func (c *Cache) Put(ctx context.Context, contentHash string, doc *docstract.Document) error {
	if doc == nil {
		return docstract.ErrInvalidInput
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO extraction_cache (content_hash, document, created_at) VALUES (?, ?, ?)",
		contentHash, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

// Purge removes all cached entries.
func (c *Cache) Purge(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM extraction_cache"); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}

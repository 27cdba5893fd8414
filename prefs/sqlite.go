/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteCache implements httpcache.Cache on a single key/value table in a
// local sqlite database.
type SQLiteCache struct {
	db  *sql.DB
	ctx context.Context
}

// OpenSQLiteCache opens (creating if needed) the database at path. Use
// ":memory:" for a throwaway database.
func OpenSQLiteCache(ctx context.Context, path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("prefs.sqlite: failed to open %v: %w", path, err)
	}
	// an in-memory database is per connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("prefs.sqlite: failed to create schema: %w", err)
	}

	return &SQLiteCache{db: db, ctx: ctx}, nil
}

func (c *SQLiteCache) Get(key string) ([]byte, bool) {
	var value []byte
	err := c.db.QueryRowContext(c.ctx,
		`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("prefs.sqlite.get: %v: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (c *SQLiteCache) Set(key string, data []byte) {
	_, err := c.db.ExecContext(c.ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value,
		 updated_at = excluded.updated_at`, key, data)
	if err != nil {
		log.Printf("prefs.sqlite.set: %v: %v", key, err)
	}
}

func (c *SQLiteCache) Delete(key string) {
	if _, err := c.db.ExecContext(c.ctx, `DELETE FROM kv WHERE key = ?`,
		key); err != nil {
		log.Printf("prefs.sqlite.delete: %v: %v", key, err)
	}
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Get returns the blob stored under key.
func (d *Database) Get(ctx context.Context, key string) ([]byte, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("key is empty")
	}

	query := "select value from kv where key = ?"

	var value []byte
	err := d.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scan row: %w", err)
	}

	return value, true, nil
}

// Set overwrites the blob stored under key.
func (d *Database) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("key is empty")
	}

	query := `insert into kv (key, value, updated_at) values (?, ?, ?)
	on conflict (key) do update set value = excluded.value, updated_at = excluded.updated_at`

	if _, err := d.db.ExecContext(ctx, query, key, value, time.Now().UTC().Unix()); err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (d *Database) Delete(ctx context.Context, key string) error {
	query := "delete from kv where key = ?"

	if _, err := d.db.ExecContext(ctx, query, strings.TrimSpace(key)); err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	return nil
}

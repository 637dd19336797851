package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"retaildb/pkg/common"
)

// Backend stores encoded records for snapshot export and import.
type Backend interface {
	// Replace swaps the stored contents for records in one step.
	Replace(records []common.Record) error
	LoadAll() ([]common.Record, error)
	Close() error
}

// SQLiteBackend keeps a snapshot in a single SQLite table. Like the index it
// has one owner and is not safe for concurrent use.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("storage: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS records (
		key INTEGER PRIMARY KEY,
		value BLOB
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init table: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Replace(records []common.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO records (key, value) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(int64(rec.Key), []byte(rec.Value)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: insert key %d: %w", rec.Key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteBackend) LoadAll() ([]common.Record, error) {
	rows, err := s.db.Query("SELECT key, value FROM records ORDER BY key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []common.Record
	for rows.Next() {
		var k int64
		var v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		records = append(records, common.Record{Key: common.KeyType(k), Value: v})
	}
	return records, rows.Err()
}

func (s *SQLiteBackend) Close() error {
	if s.db == nil {
		return errors.New("storage: backend already closed")
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Package store implements the durable state of futura: a string-keyed
// blob table plus the typed stores layered on top of it (identity, board,
// reminder settings). One key holds one record.
package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Durable record keys. Session and registry are singletons; board and
// reminder records are parameterized by the account email.
const (
	keySession = "session"
	keyUsers   = "users"
)

func boardKey(email string) string {
	return "board:" + email
}

func reminderKey(email string) string {
	return "reminders:" + email
}

// RecordStore reads and writes string-keyed blobs.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Get returns the blob at key. The second result is false when the key is
// absent; absence is not an error.
func (s *RecordStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get record %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the blob at key.
func (s *RecordStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record at key. Deleting an absent key is a no-op.
func (s *RecordStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vborges/futura/internal/model"
)

// ReminderStore owns per-account reminder settings and the monthly send
// log used to deduplicate scheduled emails.
type ReminderStore struct {
	records *RecordStore
	db      *sql.DB
}

func NewReminderStore(records *RecordStore, db *sql.DB) *ReminderStore {
	return &ReminderStore{records: records, db: db}
}

// Get returns the account's reminder settings. Absent or unparsable
// records yield inactive defaults addressed to the account email.
func (s *ReminderStore) Get(email string) (model.ReminderSettings, error) {
	settings := model.ReminderSettings{Email: email, Active: false}
	data, ok, err := s.records.Get(reminderKey(email))
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.ReminderSettings{Email: email, Active: false}, nil
	}
	return settings, nil
}

// Save overwrites the account's reminder settings wholesale.
func (s *ReminderStore) Save(email string, settings model.ReminderSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode reminder settings: %w", err)
	}
	return s.records.Set(reminderKey(email), data)
}

// WasSent reports whether the account already received its reminder for
// the given month (formatted 2006-01).
func (s *ReminderStore) WasSent(email, month string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM reminder_log WHERE email = ? AND month = ?`,
		email, month,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check reminder log: %w", err)
	}
	return n > 0, nil
}

// RecordSent marks the month as delivered for the account.
func (s *ReminderStore) RecordSent(email, month string) error {
	_, err := s.db.Exec(
		`INSERT INTO reminder_log (email, month, sent_at) VALUES (?, ?, ?)
		 ON CONFLICT(email, month) DO NOTHING`,
		email, month, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record reminder: %w", err)
	}
	return nil
}

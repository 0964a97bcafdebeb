package store

import (
	"errors"
	"log/slog"

	"github.com/vborges/futura/internal/board"
	"github.com/vborges/futura/internal/codec"
	"github.com/vborges/futura/internal/model"
)

// BoardStore owns the per-account durable board record.
type BoardStore struct {
	records *RecordStore
	logger  *slog.Logger
}

func NewBoardStore(records *RecordStore, logger *slog.Logger) *BoardStore {
	return &BoardStore{records: records, logger: logger}
}

// LoadOrCreate returns the account's board. On absence it materializes the
// default board and persists it before returning; on a corrupt record it
// does the same, overwriting the bad blob. Callers never see a decode
// failure.
func (s *BoardStore) LoadOrCreate(email string) (model.Board, error) {
	data, ok, err := s.records.Get(boardKey(email))
	if err != nil {
		return model.Board{}, err
	}
	if ok {
		b, err := codec.DecodeDurable(data)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, codec.ErrCorruptRecord) {
			return model.Board{}, err
		}
		s.logger.Warn("board record corrupt, regenerating default", "email", email, "error", err)
	}

	b := board.NewDefault()
	if err := s.Save(b, email); err != nil {
		return model.Board{}, err
	}
	return b, nil
}

// Load returns the account's board without materializing one: the second
// result is false when no parsable record exists. The reminder scheduler
// samples boards this way so inactive accounts gain no side effects.
func (s *BoardStore) Load(email string) (model.Board, bool, error) {
	data, ok, err := s.records.Get(boardKey(email))
	if err != nil || !ok {
		return model.Board{}, false, err
	}
	b, err := codec.DecodeDurable(data)
	if err != nil {
		if errors.Is(err, codec.ErrCorruptRecord) {
			return model.Board{}, false, nil
		}
		return model.Board{}, false, err
	}
	return b, true, nil
}

// Save encodes and upserts the board at the account's key. A write failure
// is reported to the caller; in-memory state stays authoritative and the
// next user-triggered mutation retries naturally.
func (s *BoardStore) Save(b model.Board, email string) error {
	data, err := codec.EncodeDurable(b)
	if err != nil {
		return err
	}
	return s.records.Set(boardKey(email), data)
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/vborges/futura/internal/model"
)

var (
	// ErrDuplicateAccount is returned when registering an email that is
	// already in the registry.
	ErrDuplicateAccount = errors.New("account already registered")
	// ErrInvalidCredentials is returned when email or credential don't match.
	ErrInvalidCredentials = errors.New("invalid email or credential")
)

// IdentityStore owns the account registry (one JSON blob at a singleton
// key, email -> credential record) and the singleton session pointer.
type IdentityStore struct {
	records *RecordStore
	logger  *slog.Logger
}

func NewIdentityStore(records *RecordStore, logger *slog.Logger) *IdentityStore {
	return &IdentityStore{records: records, logger: logger}
}

// registry loads the full account map. An unparsable registry blob is
// treated as corrupt and replaced by an empty registry on the next write.
func (s *IdentityStore) registry() (map[string]model.Credential, error) {
	data, ok, err := s.records.Get(keyUsers)
	if err != nil {
		return nil, err
	}
	users := make(map[string]model.Credential)
	if !ok {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.Warn("account registry unparsable, starting empty", "error", err)
		return make(map[string]model.Credential), nil
	}
	return users, nil
}

func (s *IdentityStore) saveRegistry(users map[string]model.Credential) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return s.records.Set(keyUsers, data)
}

// Register inserts a new account. Emails are compared exactly as entered.
func (s *IdentityStore) Register(email, credential string) (*model.User, error) {
	users, err := s.registry()
	if err != nil {
		return nil, err
	}
	if _, exists := users[email]; exists {
		return nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}
	users[email] = model.Credential{Hash: string(hash)}
	if err := s.saveRegistry(users); err != nil {
		return nil, err
	}
	return &model.User{Email: email}, nil
}

// Authenticate checks the credential and, on success, persists the session
// pointer so it survives restarts.
func (s *IdentityStore) Authenticate(email, credential string) (*model.Session, error) {
	users, err := s.registry()
	if err != nil {
		return nil, err
	}
	cred, exists := users[email]
	if !exists {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.Hash), []byte(credential)) != nil {
		return nil, ErrInvalidCredentials
	}

	sess := &model.Session{Email: email}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.records.Set(keySession, data); err != nil {
		return nil, err
	}
	return sess, nil
}

// CurrentSession reconstructs the session from durable storage. A
// malformed record is cleared and reported as "no session"; parse failures
// never propagate to the caller.
func (s *IdentityStore) CurrentSession() (*model.Session, error) {
	data, ok, err := s.records.Get(keySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Email == "" {
		s.logger.Warn("session record unparsable, clearing", "error", err)
		if delErr := s.records.Delete(keySession); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}
	return &sess, nil
}

// EndSession clears the durable session record.
func (s *IdentityStore) EndSession() error {
	return s.records.Delete(keySession)
}

// Emails lists every registered account email. The reminder scheduler uses
// this to walk accounts without touching credentials.
func (s *IdentityStore) Emails() ([]string, error) {
	users, err := s.registry()
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	return emails, nil
}

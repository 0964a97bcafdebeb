// Package backup uploads encrypted database snapshots to S3-compatible
// storage on a fixed interval. Snapshots are taken with VACUUM INTO so the
// live WAL-mode database is never copied mid-write.
package backup

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const keyPrefix = "snapshots/"

// s3Client is an interface for testability.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, input *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// Config holds snapshot manager configuration.
type Config struct {
	S3         S3Config
	DBPath     string
	Passphrase string
	Interval   time.Duration
	Retain     int
}

// State represents the snapshot manager state.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateDisabled State = "disabled"
	StateError    State = "error"
)

// Status holds the current snapshot manager status.
type Status struct {
	State      State      `json:"state"`
	LastBackup *time.Time `json:"lastBackup,omitempty"`
	Error      string     `json:"error,omitempty"`
	InProgress bool       `json:"inProgress"`
}

// StatusCallback is called whenever the snapshot state changes.
type StatusCallback func(Status)

// Manager takes, encrypts, and uploads database snapshots.
type Manager struct {
	mu       sync.RWMutex
	cfg      Config
	status   Status
	callback StatusCallback
	logger   *slog.Logger

	db     *sql.DB
	client s3Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a snapshot manager. It stays disabled unless S3
// credentials, a bucket, and a passphrase are all configured.
func NewManager(cfg Config, db *sql.DB, logger *slog.Logger, callback StatusCallback) *Manager {
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.Retain <= 0 {
		cfg.Retain = 30
	}

	m := &Manager{
		cfg:      cfg,
		db:       db,
		logger:   logger,
		callback: callback,
		status:   Status{State: StateDisabled},
	}

	if cfg.S3.Bucket != "" && cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" && cfg.Passphrase != "" {
		m.client = newS3Client(cfg.S3)
		m.status.State = StateIdle
	}

	return m
}

func newS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Enabled reports whether snapshots are configured.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client != nil
}

// Start begins the scheduled snapshot loop.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.client == nil {
		m.mu.Unlock()
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	interval := m.cfg.Interval
	m.mu.Unlock()

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := m.RunNow(ctx); err != nil {
					m.logger.Error("scheduled snapshot failed", "error", err)
				}
				if err := m.prune(ctx); err != nil {
					m.logger.Error("snapshot prune failed", "error", err)
				}
			}
		}
	}()
}

// Stop gracefully stops the snapshot loop.
func (m *Manager) Stop() {
	m.mu.RLock()
	cancel := m.cancel
	done := m.done
	m.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Status returns the current snapshot status.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Manager) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
	if m.callback != nil {
		m.callback(s)
	}
}

// RunNow takes one snapshot immediately and returns its object key.
func (m *Manager) RunNow(ctx context.Context) (string, error) {
	m.mu.RLock()
	client := m.client
	bucket := m.cfg.S3.Bucket
	passphrase := m.cfg.Passphrase
	m.mu.RUnlock()

	if client == nil {
		return "", fmt.Errorf("snapshots not configured")
	}

	m.setStatus(Status{State: StateRunning, InProgress: true})

	fail := func(err error) (string, error) {
		m.setStatus(Status{State: StateError, Error: err.Error()})
		return "", err
	}

	snapshot := filepath.Join(os.TempDir(), fmt.Sprintf("futura-snapshot-%d.db", time.Now().UnixNano()))
	defer os.Remove(snapshot)

	// VACUUM INTO produces a consistent single-file copy regardless of
	// journal mode.
	if _, err := m.db.ExecContext(ctx, "VACUUM INTO ?", snapshot); err != nil {
		return fail(fmt.Errorf("snapshot database: %w", err))
	}

	plaintext, err := os.ReadFile(snapshot)
	if err != nil {
		return fail(fmt.Errorf("read snapshot: %w", err))
	}

	sealed, err := Encrypt(plaintext, passphrase)
	if err != nil {
		return fail(fmt.Errorf("encrypt snapshot: %w", err))
	}

	key := keyPrefix + time.Now().UTC().Format("2006-01-02T150405Z") + ".db.enc"
	if _, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(sealed),
		ContentLength: aws.Int64(int64(len(sealed))),
	}); err != nil {
		return fail(fmt.Errorf("upload snapshot: %w", err))
	}

	now := time.Now().UTC()
	m.setStatus(Status{State: StateIdle, LastBackup: &now})
	m.logger.Info("snapshot uploaded", "key", key, "bytes", len(sealed))
	return key, nil
}

// prune deletes the oldest snapshots beyond the retention count. Keys embed
// a UTC timestamp, so lexicographic order is chronological.
func (m *Manager) prune(ctx context.Context) error {
	m.mu.RLock()
	client := m.client
	bucket := m.cfg.S3.Bucket
	retain := m.cfg.Retain
	m.mu.RUnlock()

	if client == nil {
		return nil
	}

	var keys []string
	var token *string
	for {
		out, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(keyPrefix),
			ContinuationToken: token,
		})
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		token = out.NextContinuationToken
	}

	if len(keys) <= retain {
		return nil
	}

	sort.Strings(keys)
	for _, key := range keys[:len(keys)-retain] {
		if _, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		}); err != nil {
			m.logger.Warn("delete old snapshot", "key", key, "error", err)
		}
	}
	return nil
}

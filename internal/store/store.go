// Package store persists a flat snapshot of all planning inputs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// DefaultKey is the single storage identifier all inputs live under.
const DefaultKey = "dpgo.inputs"

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Store provides SQLite-backed snapshot persistence. The snapshot is read
// once at startup and rewritten on every input change.
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the snapshot database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the configuration under the given key, replacing any previous
// snapshot.
func (s *Store) Save(key string, config *domain.Configuration) error {
	payload, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO snapshots (snapshot_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(snapshot_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		key, string(payload), now)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads the configuration stored under the given key. Legacy debt
// records without ids get fresh unique ids; the schema stays readable across
// that change.
func (s *Store) Load(key string) (*domain.Configuration, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM snapshots WHERE snapshot_key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var config domain.Configuration
	if err := json.Unmarshal([]byte(payload), &config); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	domain.EnsureDebtIDs(config.Debts)
	return &config, nil
}

// UpdatedAt returns when the snapshot under key was last written.
func (s *Store) UpdatedAt(key string) (time.Time, error) {
	var raw string
	err := s.db.QueryRow(
		"SELECT updated_at FROM snapshots WHERE snapshot_key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}

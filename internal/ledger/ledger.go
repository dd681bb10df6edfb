// Package ledger provides SQLite-backed storage of quasi states for host
// programs. The core model knows nothing about it; the ledger is the CLI's
// memory, not part of the state contract.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/quasi/internal/quasi"
)

// ErrNotFound is returned when no state exists under the requested id.
var ErrNotFound = errors.New("state not found")

// DB wraps a SQLite connection for state storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite ledger at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := db.SetMeta("schema_version", "1"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("stamp schema version: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS states (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		primary_mag REAL NOT NULL,
		secondary_mag REAL NOT NULL,
		coherence REAL NOT NULL,
		observed INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS observations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		state_id TEXT NOT NULL,
		collapsed REAL NOT NULL,
		observed_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_observations_state ON observations(state_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// stateRow is the flat table shape of a state.
type stateRow struct {
	ID           string  `db:"id"`
	Label        string  `db:"label"`
	PrimaryMag   float64 `db:"primary_mag"`
	SecondaryMag float64 `db:"secondary_mag"`
	Coherence    float64 `db:"coherence"`
	Observed     int     `db:"observed"`
	CreatedAt    int64   `db:"created_at"`
	UpdatedAt    int64   `db:"updated_at"`
}

func (r stateRow) toState() *quasi.State {
	s := quasi.New(r.ID, r.Label, r.PrimaryMag, r.SecondaryMag)
	// The stored coherence is authoritative: an inverted pair must not be
	// recomputed from swapped magnitudes on the way back in.
	s.Field.Coherence = r.Coherence
	s.Observed = r.Observed != 0
	return s
}

// Entry pairs a stored state with its ledger timestamps.
type Entry struct {
	State     *quasi.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PutState inserts or updates a state. The creation timestamp survives
// updates; only updated_at moves.
func (db *DB) PutState(s *quasi.State) error {
	observed := 0
	if s.Observed {
		observed = 1
	}
	now := time.Now().Unix()

	_, err := db.conn.Exec(`INSERT INTO states
		(id, label, primary_mag, secondary_mag, coherence, observed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			primary_mag = excluded.primary_mag,
			secondary_mag = excluded.secondary_mag,
			coherence = excluded.coherence,
			observed = excluded.observed,
			updated_at = excluded.updated_at`,
		s.ID, s.Field.Primary.Label,
		s.Field.Primary.Magnitude, s.Field.Secondary.Magnitude,
		s.Field.Coherence, observed, now, now,
	)
	if err != nil {
		return fmt.Errorf("put state %q: %w", s.ID, err)
	}
	return nil
}

// GetState loads a state by id. Returns ErrNotFound when absent.
func (db *DB) GetState(id string) (*quasi.State, error) {
	var row stateRow
	err := db.conn.Get(&row, "SELECT * FROM states WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("state %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get state %q: %w", id, err)
	}
	return row.toState(), nil
}

// ListStates returns all stored states, newest first.
func (db *DB) ListStates() ([]Entry, error) {
	var rows []stateRow
	err := db.conn.Select(&rows, "SELECT * FROM states ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			State:     r.toState(),
			CreatedAt: time.Unix(r.CreatedAt, 0),
			UpdatedAt: time.Unix(r.UpdatedAt, 0),
		})
	}
	return entries, nil
}

// Observation is one logged collapse.
type Observation struct {
	StateID    string  `db:"state_id"`
	Collapsed  float64 `db:"collapsed"`
	ObservedAt int64   `db:"observed_at"`
}

// RecordObservation appends a collapse to the observation log.
func (db *DB) RecordObservation(stateID string, collapsed float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO observations (state_id, collapsed, observed_at) VALUES (?, ?, ?)",
		stateID, collapsed, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record observation for %q: %w", stateID, err)
	}
	return nil
}

// RecentObservations returns the most recent N observations.
func (db *DB) RecentObservations(limit int) ([]Observation, error) {
	var obs []Observation
	err := db.conn.Select(&obs,
		"SELECT state_id, collapsed, observed_at FROM observations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent observations: %w", err)
	}
	return obs, nil
}

// SetMeta stores a key-value pair in ledger metadata.
func (db *DB) SetMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}

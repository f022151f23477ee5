package submit

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StateDB tracks which race files have been successfully submitted to
// avoid re-sending, along with what each file claimed: the distance,
// time and locally estimated VDOT, so a coach can audit past
// submissions offline.
type StateDB struct {
	db *sql.DB
}

// SubmissionRecord is what the state database remembers about one
// submitted race file.
type SubmissionRecord struct {
	Path          string
	Size          int64
	Hash          string
	DistanceLabel string
	TimeSec       float64
	EstimatedVDOT float64
}

// OpenStateDB opens (or creates) the SQLite state database at dir/state.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS submitted_races (
		path           TEXT PRIMARY KEY,
		size           INTEGER NOT NULL,
		hash           TEXT NOT NULL,
		distance_label TEXT NOT NULL DEFAULT '',
		time_sec       REAL NOT NULL DEFAULT 0,
		estimated_vdot REAL NOT NULL DEFAULT 0,
		submitted_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsSubmitted checks if a file has already been submitted with the same
// size and hash. An edited result file re-submits.
func (s *StateDB) IsSubmitted(relPath string, size int64, hash string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM submitted_races WHERE path = ? AND size = ? AND hash = ?`,
		relPath, size, hash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkSubmitted records a successfully submitted race file together with
// the parsed race details.
func (s *StateDB) MarkSubmitted(rec SubmissionRecord) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO submitted_races
		 (path, size, hash, distance_label, time_sec, estimated_vdot)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Path, rec.Size, rec.Hash, rec.DistanceLabel, rec.TimeSec, rec.EstimatedVDOT,
	)
	return err
}

// Submission retrieves the stored record for a race file. The second
// return is false when the file was never submitted.
func (s *StateDB) Submission(relPath string) (SubmissionRecord, bool, error) {
	var rec SubmissionRecord
	err := s.db.QueryRow(
		`SELECT path, size, hash, distance_label, time_sec, estimated_vdot
		 FROM submitted_races WHERE path = ?`, relPath,
	).Scan(&rec.Path, &rec.Size, &rec.Hash, &rec.DistanceLabel, &rec.TimeSec, &rec.EstimatedVDOT)
	if err == sql.ErrNoRows {
		return SubmissionRecord{}, false, nil
	}
	if err != nil {
		return SubmissionRecord{}, false, err
	}
	return rec, true, nil
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// HashFile computes the SHA-256 hash of a file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

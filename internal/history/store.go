package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
)

// Store owns the draw history: an ordered sequence of records, newest
// insertion first, mirrored to a single JSON file. Mutation runs under one
// mutex and every rewrite goes through a temp file plus rename, so a
// concurrent reader never observes a half-written array.
type Store struct {
	mu      sync.Mutex
	path    string
	records []Record
}

// Open loads the history at path. When the file is absent or unreadable it
// falls back to the bootstrap seed and tries to persist it. Open always
// returns a usable store: one that cannot reach its file keeps working
// in memory for the process lifetime.
func Open(path string) *Store {
	s := &Store{path: path}

	records, err := readFile(path)
	if err == nil {
		s.records = records
		return s
	}
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("No history file, seeding bootstrap records", "path", path)
	} else {
		logger.Warn("History file unreadable, reseeding", "path", path, "err", err)
	}

	s.records = seedRecords()
	if err := s.persist(); err != nil {
		logger.Warn("Could not persist seed history", "path", path, "err", err)
	}
	return s
}

func readFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode history file: %w", err)
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("failed to decode history file: %w", err)
		}
	}
	return records, nil
}

// Records returns a copy of the history, newest insertion first.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Latest returns the most recently inserted record.
func (s *Store) Latest() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[0], true
}

// InsertIfNew prepends rec unless a record with the same date already
// exists, and reports whether it inserted. A failed disk write is logged,
// not returned: the in-memory sequence stays authoritative for the rest of
// the process lifetime.
func (s *Store) InsertIfNew(rec Record) (bool, error) {
	if err := rec.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.Date.Equal(rec.Date.Time) {
			return false, nil
		}
	}

	s.records = append([]Record{rec}, s.records...)
	if err := s.persist(); err != nil {
		logger.Warn("History write failed, record kept in memory only",
			"path", s.path, "date", rec.Date.String(), "err", err)
	}
	return true, nil
}

// persist rewrites the whole backing file atomically. Callers must hold mu
// or have exclusive access to the store.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"games-catalog-service/internal/domain"
)

// FileBackend persists the catalog as a single JSON array on disk, probing
// an ordered list of candidate paths. The order reflects the most likely
// correct location first and is configuration, not logic.
type FileBackend struct {
	paths []string
}

// NewFileBackend constructs a file backend over the candidate paths.
func NewFileBackend(paths []string) *FileBackend {
	return &FileBackend{paths: paths}
}

// Name implements Backend.
func (f *FileBackend) Name() string { return "file" }

// Load probes the candidates in order and returns the first decodable
// collection. A missing file moves on to the next candidate; any other
// failure is reported if no candidate succeeds.
func (f *FileBackend) Load() ([]domain.Game, bool, error) {
	var errs []error
	for _, path := range f.paths {
		games, err := decodeFile(path)
		if err == nil {
			return games, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, false, errors.Join(errs...)
	}
	return nil, false, nil
}

// Save sweeps the candidates in order and stops at the first successful
// write. When every candidate fails the mutation is not durable and a
// PersistenceError is returned.
func (f *FileBackend) Save(games []domain.Game) error {
	perr := &PersistenceError{}
	for _, path := range f.paths {
		if err := WriteCollection(path, games); err != nil {
			perr.Attempts = append(perr.Attempts, AttemptError{Path: path, Err: err})
			continue
		}
		return nil
	}
	return perr
}

// WriteCollection writes the collection to path as an indented JSON array,
// using a tmp-file rename so readers never observe a partial document.
func WriteCollection(path string, games []domain.Game) error {
	if games == nil {
		games = []domain.Game{}
	}
	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func decodeFile(path string) ([]domain.Game, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var games []domain.Game
	if err := json.NewDecoder(file).Decode(&games); err != nil {
		return nil, err
	}
	return games, nil
}

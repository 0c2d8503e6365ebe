package store

import (
	"log/slog"
	"time"

	"games-catalog-service/internal/domain"
	"games-catalog-service/internal/logging"
	"games-catalog-service/internal/metrics"
)

// Store mediates all reads and writes of the game collection. It composes
// the bundled snapshot with a single persistence backend chosen at
// startup; reads prefer whatever the backend holds and fall back to the
// seed, so a fresh deployment serves the bundled data and every later
// read observes prior writes.
type Store struct {
	seed    *Seed
	backend Backend
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a Store over the given seed and backend.
func New(seed *Seed, backend Backend, logger *slog.Logger, recorder *metrics.Recorder) *Store {
	return &Store{
		seed:    seed,
		backend: backend,
		logger:  logger,
		metrics: recorder,
	}
}

// Backend exposes the active backend name for logs and health output.
func (s *Store) Backend() string {
	return s.backend.Name()
}

// Read returns the current collection. Precedence: backend data whenever
// it exists (the cache or disk copy may be ahead of the immutable seed),
// then the bundled snapshot, then an empty collection. Read never fails;
// load errors degrade to the next source and are logged.
func (s *Store) Read() []domain.Game {
	start := time.Now()
	games, ok, err := s.backend.Load()
	s.metrics.RecordStoreRead(s.backend.Name(), time.Since(start), err)
	if err != nil {
		logging.Warn(s.logger, "backend load failed, falling back to bundled snapshot",
			slog.String(logging.FieldBackend, s.backend.Name()),
			slog.Any("error", err),
		)
	}
	if ok {
		return games
	}

	seeded, err := s.seed.Load()
	if err != nil {
		logging.Warn(s.logger, "bundled snapshot unavailable", slog.Any("error", err))
		return []domain.Game{}
	}
	if p, ok := s.backend.(primer); ok {
		p.Prime(seeded)
	}
	return seeded
}

// Write persists a full replacement collection through the backend.
// Callers must write before responding: a PersistenceError means the
// mutation is not durably applied.
func (s *Store) Write(games []domain.Game) error {
	start := time.Now()
	err := s.backend.Save(games)
	s.metrics.RecordStoreWrite(s.backend.Name(), time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "failed to persist catalog", err,
			slog.String(logging.FieldBackend, s.backend.Name()),
			slog.Int(logging.FieldCount, len(games)),
		)
		return err
	}
	return nil
}

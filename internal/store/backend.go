package store

import "games-catalog-service/internal/domain"

// Backend persists full catalog snapshots. Implementations are chosen once
// at process start; the store never switches backends at runtime.
type Backend interface {
	// Name labels the backend in logs and metrics.
	Name() string
	// Load returns the persisted collection. The boolean is false when the
	// backend holds nothing yet (as opposed to an empty collection it was
	// explicitly given).
	Load() ([]domain.Game, bool, error)
	// Save replaces the persisted collection with a full new snapshot.
	Save(games []domain.Game) error
}

// primer is implemented by backends that can be warmed from the bundled
// snapshot on first read.
type primer interface {
	Prime(games []domain.Game)
}

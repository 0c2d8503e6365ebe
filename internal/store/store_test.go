package store

import (
	"errors"
	"path/filepath"
	"testing"

	"games-catalog-service/internal/domain"
	"games-catalog-service/internal/metrics"
)

func seedFile(t *testing.T, games []domain.Game) *Seed {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	writeJSON(t, path, games)
	return NewSeed(path)
}

type failingBackend struct {
	loadErr error
	saveErr error
}

func (f *failingBackend) Name() string { return "failing" }
func (f *failingBackend) Load() ([]domain.Game, bool, error) {
	return nil, false, f.loadErr
}
func (f *failingBackend) Save([]domain.Game) error { return f.saveErr }

func TestStoreReadPrefersBackendData(t *testing.T) {
	seed := seedFile(t, []domain.Game{{ID: "seed"}})
	cache := NewCacheBackend()
	if err := cache.Save([]domain.Game{{ID: "cached"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	s := New(seed, cache, nil, nil)

	games := s.Read()
	if len(games) != 1 || games[0].ID != "cached" {
		t.Fatalf("expected cache to win over seed: %+v", games)
	}
}

func TestStoreReadFallsBackToSeedAndPrimesCache(t *testing.T) {
	seed := seedFile(t, []domain.Game{{ID: "seed"}})
	cache := NewCacheBackend()
	s := New(seed, cache, nil, nil)

	games := s.Read()
	if len(games) != 1 || games[0].ID != "seed" {
		t.Fatalf("expected seed data: %+v", games)
	}

	// The cache is now primed; later reads are cache-served.
	primed, ok, _ := cache.Load()
	if !ok || len(primed) != 1 || primed[0].ID != "seed" {
		t.Fatalf("cache not primed: ok=%v %+v", ok, primed)
	}
}

func TestStoreReadSmallerCacheStillWins(t *testing.T) {
	// A cache holding fewer records than the seed is the result of a
	// delete in this process and must not be shadowed by stale seed data.
	seed := seedFile(t, []domain.Game{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	cache := NewCacheBackend()
	if err := cache.Save([]domain.Game{{ID: "1"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	s := New(seed, cache, nil, nil)

	games := s.Read()
	if len(games) != 1 || games[0].ID != "1" {
		t.Fatalf("expected post-delete cache to win: %+v", games)
	}
}

func TestStoreReadNeverFails(t *testing.T) {
	// Backend and seed both broken: still no panic, empty collection back.
	seed := NewSeed(filepath.Join(t.TempDir(), "nope.json"))
	s := New(seed, &failingBackend{loadErr: errors.New("io down")}, nil, nil)

	games := s.Read()
	if games == nil || len(games) != 0 {
		t.Fatalf("expected empty collection, got %+v", games)
	}
}

func TestStoreReadFileBackendObservesPriorWrite(t *testing.T) {
	dir := t.TempDir()
	seed := seedFile(t, []domain.Game{{ID: "seed"}})
	backend := NewFileBackend([]string{filepath.Join(dir, "games.json")})
	s := New(seed, backend, nil, nil)

	if err := s.Write([]domain.Game{{ID: "written"}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	games := s.Read()
	if len(games) != 1 || games[0].ID != "written" {
		t.Fatalf("read did not observe durable write: %+v", games)
	}
}

func TestStoreWritePropagatesPersistenceError(t *testing.T) {
	seed := seedFile(t, nil)
	saveErr := &PersistenceError{Attempts: []AttemptError{{Path: "x", Err: errors.New("denied")}}}
	s := New(seed, &failingBackend{saveErr: saveErr}, nil, nil)

	err := s.Write([]domain.Game{{ID: "1"}})
	if _, ok := AsPersistenceError(err); !ok {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestStoreRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	seed := seedFile(t, []domain.Game{{ID: "seed"}})
	cache := NewCacheBackend()
	s := New(seed, cache, nil, rec)

	s.Read()
	if err := s.Write([]domain.Game{{ID: "1"}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if rec.StoreReads("memory") != 1 {
		t.Fatalf("expected 1 read recorded, got %d", rec.StoreReads("memory"))
	}
	if rec.StoreWrites("memory") != 1 {
		t.Fatalf("expected 1 write recorded, got %d", rec.StoreWrites("memory"))
	}
}

func TestSeedEmbeddedDataset(t *testing.T) {
	games, err := NewSeed("").Load()
	if err != nil {
		t.Fatalf("embedded seed must always load: %v", err)
	}
	if len(games) == 0 {
		t.Fatalf("embedded seed is empty")
	}
	for _, g := range games {
		if g.ID == "" {
			t.Fatalf("seed record without id: %+v", g)
		}
	}
}

func TestSeedOverridePath(t *testing.T) {
	seed := seedFile(t, []domain.Game{{ID: "custom"}})

	games, err := seed.Load()
	if err != nil {
		t.Fatalf("override seed failed: %v", err)
	}
	if len(games) != 1 || games[0].ID != "custom" {
		t.Fatalf("unexpected seed contents: %+v", games)
	}
}

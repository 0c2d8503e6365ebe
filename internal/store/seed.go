package store

import (
	"embed"
	"encoding/json"
	"os"

	"games-catalog-service/internal/domain"
)

//go:embed seed/games.json
var seedFS embed.FS

// Seed loads the bundled snapshot: the read-only dataset shipped inside
// the binary, always available in a correctly packaged deployment. An
// override path can point at an external seed file for testing or custom
// deployments.
type Seed struct {
	path string
}

// NewSeed constructs a seed source. An empty path uses the embedded
// dataset.
func NewSeed(path string) *Seed {
	return &Seed{path: path}
}

// Load returns the bundled collection.
func (s *Seed) Load() ([]domain.Game, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	var games []domain.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (s *Seed) read() ([]byte, error) {
	if s != nil && s.path != "" {
		return os.ReadFile(s.path)
	}
	return seedFS.ReadFile("seed/games.json")
}

package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"games-catalog-service/internal/domain"
	"games-catalog-service/internal/logging"
	"games-catalog-service/internal/metrics"
	"games-catalog-service/internal/timeutil"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Store is the persistence contract the service operates over. Read
// returns the full current collection; Write persists a full replacement
// snapshot.
type Store interface {
	Read() []domain.Game
	Write(games []domain.Game) error
}

// Service implements the catalog operations over a Store. Each operation
// reads a complete snapshot, works on it in memory, and writes a complete
// replacement; there is no optimistic-concurrency guard, so overlapping
// mutations within one process can lose updates.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	newID   func() string
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Query selects and pages the collection. Zero page/limit values fall
// back to the defaults (page 1, 10 records).
type Query struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Pagination describes the slice a List call returned.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is the List result payload.
type Page struct {
	Games      []domain.Game `json:"games"`
	Pagination Pagination    `json:"pagination"`
}

// List filters the collection by category and search term (AND composed)
// and returns the requested page.
func (s *Service) List(q Query) Page {
	games := s.store.Read()

	filtered := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if q.Category != "" && !g.MatchesCategory(q.Category) {
			continue
		}
		if q.Search != "" && !g.MatchesSearch(q.Search) {
			continue
		}
		filtered = append(filtered, g)
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	offset := (page - 1) * limit

	var slice []domain.Game
	switch {
	case offset >= total:
		slice = []domain.Game{}
	case offset+limit > total:
		slice = filtered[offset:]
	default:
		slice = filtered[offset : offset+limit]
	}

	return Page{
		Games: slice,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// Get returns the record with the given id.
func (s *Service) Get(id string) (domain.Game, error) {
	for _, g := range s.store.Read() {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Game{}, NotFound("game not found")
}

// Create appends a new record. A caller-supplied id is kept verbatim but
// must be unique; otherwise an id is assigned. createdAt and updatedAt
// are stamped equal.
func (s *Service) Create(game domain.Game) (domain.Game, error) {
	games := s.store.Read()

	if game.ID != "" {
		for _, g := range games {
			if g.ID == game.ID {
				return domain.Game{}, Conflict(fmt.Sprintf("game with id %q already exists", game.ID))
			}
		}
	} else {
		game.ID = s.nextID(games)
	}

	now := timeutil.FormatTimestamp(s.now())
	game.CreatedAt = now
	game.UpdatedAt = now

	next := append(domain.CloneSlice(games), game)
	if err := s.store.Write(next); err != nil {
		return domain.Game{}, err
	}

	s.metrics.RecordCatalogOp("create")
	logging.Info(s.logger, "game created",
		slog.String(logging.FieldGameID, game.ID),
		slog.Int(logging.FieldCount, len(next)),
	)
	return game, nil
}

// nextID continues the numeric id sequence when one exists: max+1 over
// every integer-parseable id. A collection with no numeric ids gets a
// generated unique token instead of restarting the sequence at 1.
func (s *Service) nextID(games []domain.Game) string {
	if len(games) == 0 {
		return "1"
	}
	highest, found := 0, false
	for _, g := range games {
		n, err := strconv.Atoi(g.ID)
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest = n
		}
		found = true
	}
	if !found {
		return s.newID()
	}
	return strconv.Itoa(highest + 1)
}

// Update shallow-merges the patch over the existing record identified by
// its id field. Supplied fields win, unspecified fields are retained,
// createdAt is untouched and updatedAt refreshed.
func (s *Service) Update(patch map[string]json.RawMessage) (domain.Game, error) {
	idRaw, ok := patch[domain.FieldID]
	if !ok {
		return domain.Game{}, NotFound("game not found")
	}
	var id string
	if err := json.Unmarshal(idRaw, &id); err != nil {
		return domain.Game{}, BadRequest("id must be a string")
	}

	games := s.store.Read()
	index := -1
	for i, g := range games {
		if g.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.Game{}, NotFound("game not found")
	}

	merged, err := games[index].Merge(patch)
	if err != nil {
		return domain.Game{}, BadRequest("invalid game payload")
	}
	merged.UpdatedAt = timeutil.FormatTimestamp(s.now())

	next := domain.CloneSlice(games)
	next[index] = merged
	if err := s.store.Write(next); err != nil {
		return domain.Game{}, err
	}

	s.metrics.RecordCatalogOp("update")
	logging.Info(s.logger, "game updated", slog.String(logging.FieldGameID, id))
	return merged, nil
}

// Delete removes every record whose id appears in ids and reports how
// many were removed. Ids with no matching record are skipped, not an
// error.
func (s *Service) Delete(ids []string) (int, error) {
	games := s.store.Read()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	kept := make([]domain.Game, 0, len(games))
	removed := 0
	for _, g := range games {
		if _, hit := wanted[g.ID]; hit {
			removed++
			continue
		}
		kept = append(kept, g)
	}

	if err := s.store.Write(kept); err != nil {
		return 0, err
	}

	s.metrics.RecordCatalogOp("delete")
	logging.Info(s.logger, "games deleted", slog.Int(logging.FieldCount, removed))
	return removed, nil
}

// DeleteOne removes a single record by id; a miss is a NotFound error.
func (s *Service) DeleteOne(id string) (int, error) {
	games := s.store.Read()

	index := -1
	for i, g := range games {
		if g.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, NotFound("game not found")
	}

	next := append(domain.CloneSlice(games[:index]), games[index+1:]...)
	if err := s.store.Write(next); err != nil {
		return 0, err
	}

	s.metrics.RecordCatalogOp("delete")
	logging.Info(s.logger, "game deleted", slog.String(logging.FieldGameID, id))
	return 1, nil
}

package catalog

import (
	"strconv"
	"testing"

	"games-catalog-service/internal/domain"
)

func BenchmarkListFiltered(b *testing.B) {
	games := make([]domain.Game, 0, 1000)
	for i := 0; i < 1000; i++ {
		category := "arcade"
		if i%3 == 0 {
			category = "rpg"
		}
		games = append(games, domain.Game{
			ID:          strconv.Itoa(i + 1),
			Category:    category,
			Names:       map[string]string{"en": "Game " + strconv.Itoa(i+1)},
			Description: "catalog entry",
		})
	}
	svc := NewService(&stubStore{games: games}, nil, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.List(Query{Category: "rpg", Search: "game", Page: 2, Limit: 10})
	}
}

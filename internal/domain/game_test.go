package domain

import (
	"encoding/json"
	"testing"
)

func TestGameUnmarshalPreservesUnknownFields(t *testing.T) {
	payload := []byte(`{
		"id": "7",
		"names": {"en": "Dragon Keep", "de": "Drachenfeste"},
		"category": "RPG",
		"description": "slay the dragon",
		"createdAt": "2024-01-02T03:04:05Z",
		"updatedAt": "2024-01-02T03:04:05Z",
		"rating": 4.5,
		"tags": ["fantasy", "coop"]
	}`)

	var g Game
	if err := json.Unmarshal(payload, &g); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if g.ID != "7" {
		t.Fatalf("expected id 7, got %q", g.ID)
	}
	if g.Names["de"] != "Drachenfeste" {
		t.Fatalf("unexpected names: %+v", g.Names)
	}
	if len(g.Extra) != 2 {
		t.Fatalf("expected 2 extra fields, got %d: %+v", len(g.Extra), g.Extra)
	}
	if _, ok := g.Extra["rating"]; !ok {
		t.Fatalf("rating not preserved: %+v", g.Extra)
	}
}

func TestGameRoundTripKeepsExtras(t *testing.T) {
	payload := []byte(`{"id":"1","names":{"en":"Puzzler"},"category":"puzzle","publisher":{"name":"acme"}}`)

	var g Game
	if err := json.Unmarshal(payload, &g); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if _, ok := decoded["publisher"]; !ok {
		t.Fatalf("publisher dropped on round trip: %s", data)
	}
	if string(decoded["id"]) != `"1"` {
		t.Fatalf("unexpected id: %s", decoded["id"])
	}
}

func TestGameMergeSuppliedFieldsWin(t *testing.T) {
	base := Game{
		ID:          "3",
		Category:    "arcade",
		Description: "original",
		CreatedAt:   "2024-01-01T00:00:00Z",
		Extra:       map[string]json.RawMessage{"score": json.RawMessage(`10`)},
	}
	patch := map[string]json.RawMessage{
		"id":          json.RawMessage(`"3"`),
		"description": json.RawMessage(`"rewritten"`),
		"createdAt":   json.RawMessage(`"1999-01-01T00:00:00Z"`),
	}

	merged, err := base.Merge(patch)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if merged.Description != "rewritten" {
		t.Fatalf("patched field not applied: %q", merged.Description)
	}
	if merged.Category != "arcade" {
		t.Fatalf("unpatched field lost: %q", merged.Category)
	}
	if merged.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("createdAt should not be patchable, got %q", merged.CreatedAt)
	}
	if string(merged.Extra["score"]) != "10" {
		t.Fatalf("extra field lost: %+v", merged.Extra)
	}
}

func TestGameMergeAddsNewFields(t *testing.T) {
	base := Game{ID: "9", Category: "rpg"}
	merged, err := base.Merge(map[string]json.RawMessage{
		"studio": json.RawMessage(`"indie"`),
	})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if string(merged.Extra["studio"]) != `"indie"` {
		t.Fatalf("new field missing: %+v", merged.Extra)
	}
}

func TestMatchesCategory(t *testing.T) {
	g := Game{Category: "Action-RPG"}
	if !g.MatchesCategory("rpg") {
		t.Fatalf("expected case-insensitive substring match")
	}
	if g.MatchesCategory("puzzle") {
		t.Fatalf("unexpected category match")
	}
}

func TestMatchesSearch(t *testing.T) {
	g := Game{
		Names:       map[string]string{"en": "Dragon Keep", "fr": "Forteresse"},
		Description: "tower defense classic",
	}
	if !g.MatchesSearch("DRAGON") {
		t.Fatalf("expected name match")
	}
	if !g.MatchesSearch("tower") {
		t.Fatalf("expected description match")
	}
	if g.MatchesSearch("chess") {
		t.Fatalf("unexpected match")
	}
}

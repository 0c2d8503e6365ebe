package domain

import (
	"encoding/json"
	"strings"
)

// Reserved field names in a game document. Everything else passes through
// untouched.
const (
	FieldID          = "id"
	FieldNames       = "names"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// Game is the canonical catalog record. The schema is open: fields the
// service does not interpret are kept verbatim in Extra and survive a full
// decode/encode round trip.
type Game struct {
	ID          string
	Names       map[string]string
	Category    string
	Description string
	CreatedAt   string
	UpdatedAt   string
	Extra       map[string]json.RawMessage
}

// UnmarshalJSON decodes known fields into their typed slots and stashes
// everything else in Extra.
func (g *Game) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Game{}
	for key, val := range raw {
		switch key {
		case FieldID:
			if err := json.Unmarshal(val, &out.ID); err != nil {
				return err
			}
		case FieldNames:
			if err := json.Unmarshal(val, &out.Names); err != nil {
				return err
			}
		case FieldCategory:
			if err := json.Unmarshal(val, &out.Category); err != nil {
				return err
			}
		case FieldDescription:
			if err := json.Unmarshal(val, &out.Description); err != nil {
				return err
			}
		case FieldCreatedAt:
			if err := json.Unmarshal(val, &out.CreatedAt); err != nil {
				return err
			}
		case FieldUpdatedAt:
			if err := json.Unmarshal(val, &out.UpdatedAt); err != nil {
				return err
			}
		default:
			if out.Extra == nil {
				out.Extra = make(map[string]json.RawMessage)
			}
			out.Extra[key] = val
		}
	}

	*g = out
	return nil
}

// MarshalJSON emits the typed fields alongside the preserved extras.
// Empty typed fields are omitted so records only carry what was set.
func (g Game) MarshalJSON() ([]byte, error) {
	raw, err := g.Fields()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// Fields flattens the record into a field-name keyed map, the shape used
// for merging and for marshaling.
func (g Game) Fields() (map[string]json.RawMessage, error) {
	raw := make(map[string]json.RawMessage, len(g.Extra)+6)
	for key, val := range g.Extra {
		raw[key] = val
	}

	set := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		raw[key] = data
		return nil
	}

	if g.ID != "" {
		if err := set(FieldID, g.ID); err != nil {
			return nil, err
		}
	}
	if g.Names != nil {
		if err := set(FieldNames, g.Names); err != nil {
			return nil, err
		}
	}
	if g.Category != "" {
		if err := set(FieldCategory, g.Category); err != nil {
			return nil, err
		}
	}
	if g.Description != "" {
		if err := set(FieldDescription, g.Description); err != nil {
			return nil, err
		}
	}
	if g.CreatedAt != "" {
		if err := set(FieldCreatedAt, g.CreatedAt); err != nil {
			return nil, err
		}
	}
	if g.UpdatedAt != "" {
		if err := set(FieldUpdatedAt, g.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// Merge applies a shallow field-level patch over the record: supplied
// fields win, unspecified fields are retained. createdAt is never
// overwritten by a patch.
func (g Game) Merge(patch map[string]json.RawMessage) (Game, error) {
	raw, err := g.Fields()
	if err != nil {
		return Game{}, err
	}
	for key, val := range patch {
		if key == FieldCreatedAt {
			continue
		}
		raw[key] = val
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return Game{}, err
	}
	var merged Game
	if err := merged.UnmarshalJSON(data); err != nil {
		return Game{}, err
	}
	return merged, nil
}

// MatchesCategory reports whether the record's category contains the
// filter as a case-insensitive substring.
func (g Game) MatchesCategory(filter string) bool {
	return strings.Contains(strings.ToLower(g.Category), strings.ToLower(filter))
}

// MatchesSearch reports whether any display name or the description
// contains the term as a case-insensitive substring.
func (g Game) MatchesSearch(term string) bool {
	needle := strings.ToLower(term)
	for _, name := range g.Names {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(g.Description), needle)
}

// CloneSlice returns a shallow copy of a collection snapshot so callers
// can append or reorder without aliasing the source slice.
func CloneSlice(games []Game) []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

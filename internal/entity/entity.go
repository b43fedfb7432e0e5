// Package entity extracts typed, confidence-scored entities from text
// using layered pattern families and per-industry lexicons.
package entity

import (
	"sort"

	"github.com/schemascribe/backend/internal/shared/textutil"
)

// Type classifies an extracted entity.
type Type string

const (
	TypePerson       Type = "person"
	TypeOrganization Type = "organization"
	TypeProduct      Type = "product"
	TypeService      Type = "service"
	TypeConcept      Type = "concept"
	TypeLocation     Type = "location"
	TypeEvent        Type = "event"
	TypeMedical      Type = "medical"
	TypeFitness      Type = "fitness"
	TypeMaterial     Type = "material"
	TypeBrand        Type = "brand"
	TypeDate         Type = "date"
	TypeMoney        Type = "money"
	TypeTechnology   Type = "technology"
)

// Entity is a named thing extracted from text.
type Entity struct {
	Name       string   `json:"name"` // canonical casing
	Type       Type     `json:"type"`
	Confidence float64  `json:"confidence"` // in [0,1]
	Context    string   `json:"context,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	SameAs     []string `json:"sameAs,omitempty"`
	Mentions   int      `json:"mentions"`
}

// Key returns the deduplication key: lowercased, whitespace-collapsed name.
func (e *Entity) Key() string {
	return textutil.NormalizeName(e.Name)
}

// set accumulates entities, deduplicating by normalized name. On duplicate
// the confidence is the max of observed values, mention counts sum, and
// the higher-confidence type assignment wins.
type set struct {
	byKey map[string]*Entity
}

func newSet() *set {
	return &set{byKey: make(map[string]*Entity)}
}

func (s *set) add(e Entity) {
	if e.Mentions == 0 {
		e.Mentions = 1
	}

	key := e.Key()
	existing, ok := s.byKey[key]
	if !ok {
		copied := e
		s.byKey[key] = &copied
		return
	}

	existing.Mentions += e.Mentions
	if e.Confidence > existing.Confidence {
		existing.Confidence = e.Confidence
		existing.Type = e.Type
		existing.Name = e.Name
	}
	if existing.Context == "" {
		existing.Context = e.Context
	}
}

// sorted returns entities by confidence descending, capped at max.
func (s *set) sorted(max int) []Entity {
	out := make([]Entity, 0, len(s.byKey))
	for _, e := range s.byKey {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Name < out[j].Name
	})
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// Merge deduplicates entities from multiple extraction passes.
func Merge(lists ...[]Entity) []Entity {
	s := newSet()
	for _, list := range lists {
		for _, e := range list {
			s.add(e)
		}
	}
	return s.sorted(0)
}

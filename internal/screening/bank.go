package screening

import (
	"sort"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

const (
	similarityWeight = 0.6
	keywordBoost     = 0.2
)

// Bank is the screening-item bank with its fitted TF-IDF index. Built once
// over a registry; items linked only to modules absent from the registry
// still participate in matching but never produce a module score.
type Bank struct {
	reg   *registry.Registry
	items []Item
	vec   *vectorizer
}

// New builds a Bank over the default item set.
func New(reg *registry.Registry) *Bank {
	return NewWithItems(reg, defaultItems())
}

// NewWithItems builds a Bank over a caller-supplied item set.
func NewWithItems(reg *registry.Registry, items []Item) *Bank {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return &Bank{reg: reg, items: items, vec: newVectorizer(texts)}
}

// Items returns the bank's screening items.
func (b *Bank) Items() []Item {
	return b.items
}

// ModuleScore is one module's screening-level relevance.
type ModuleScore struct {
	ModuleID string
	Score    float64
}

// ModuleScores screens the presenting concern against every item and
// aggregates per-module relevance scores. Each item's score combines TF-IDF
// cosine similarity with a flat boost per keyword found as a substring of
// the concern, scaled by item severity. A module takes the maximum over its
// linked items; scores below threshold are dropped, survivors are scaled by
// the module's priority weight and returned in descending order.
func (b *Bank) ModuleScores(concern string, threshold float64) []ModuleScore {
	concern = strings.ToLower(strings.TrimSpace(concern))
	if concern == "" {
		return nil
	}

	best := make(map[string]float64)
	for i, item := range b.items {
		sim := b.vec.similarity(concern, i)

		var boost float64
		for _, kw := range item.Keywords {
			if strings.Contains(concern, strings.ToLower(kw)) {
				boost += keywordBoost
			}
		}

		combined := (sim*similarityWeight + boost) * item.Severity.Weight()
		if combined > 1 {
			combined = 1
		}
		for _, moduleID := range item.LinkedModules {
			if combined > best[moduleID] {
				best[moduleID] = combined
			}
		}
	}

	var out []ModuleScore
	for moduleID, score := range best {
		m := b.reg.Get(moduleID)
		if m == nil || score < threshold {
			continue
		}
		final := score * m.PriorityWeight
		if final > 1 {
			final = 1
		}
		out = append(out, ModuleScore{ModuleID: moduleID, Score: final})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ModuleID < out[j].ModuleID
	})
	return out
}

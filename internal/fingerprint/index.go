// Package fingerprint builds per-module keyword fingerprints from the
// registry's question bank. A fingerprint maps each keyword a module's
// questions can surface to an additive relevance weight, so that patient
// text can be matched against modules without any free-text inference.
package fingerprint

import (
	"strings"

	"github.com/ksuri/mindtriage/internal/keywords"
	"github.com/ksuri/mindtriage/internal/registry"
)

// Source weights. Category tags are the strongest signal because they name
// the symptom directly; examples use patient-facing language and outrank
// the clinical question text.
const (
	weightSimpleText = 0.3
	weightExamples   = 0.5
	weightHelpText   = 0.2
	weightCategory   = 0.7
)

// Fingerprint is one module's keyword profile.
type Fingerprint struct {
	ModuleID string
	// Weights maps keyword to accumulated relevance weight across all of
	// the module's questions.
	Weights map[string]float64
	// Total is the sum of all weights, the normalization denominator for
	// symptom matching.
	Total float64
	// Criteria is the union of keywords extracted from the module's
	// diagnostic-criteria sentences.
	Criteria map[string]bool
}

// Index holds the fingerprints of every registered module. Built once at
// startup and read-only afterward.
type Index struct {
	byModule map[string]*Fingerprint
}

// Build computes fingerprints for every module in the registry.
func Build(reg *registry.Registry) *Index {
	idx := &Index{byModule: make(map[string]*Fingerprint, reg.Len())}
	for _, m := range reg.Modules() {
		idx.byModule[m.ID] = buildOne(&m)
	}
	return idx
}

func buildOne(m *registry.Module) *Fingerprint {
	fp := &Fingerprint{
		ModuleID: m.ID,
		Weights:  make(map[string]float64),
		Criteria: make(map[string]bool),
	}
	for _, q := range m.Questions {
		addKeywords(fp, q.SimpleText, weightSimpleText)
		for _, ex := range q.Examples {
			addKeywords(fp, ex, weightExamples)
		}
		addKeywords(fp, q.HelpText, weightHelpText)
		for _, tok := range categoryTokens(q.SymptomCategory) {
			fp.add(tok, weightCategory)
		}
	}
	for _, sentence := range m.Criteria {
		for _, kw := range keywords.Extract(sentence) {
			fp.Criteria[kw] = true
		}
	}
	return fp
}

func addKeywords(fp *Fingerprint, text string, weight float64) {
	if text == "" {
		return
	}
	for _, kw := range keywords.Extract(text) {
		fp.add(kw, weight)
	}
}

func (fp *Fingerprint) add(kw string, weight float64) {
	fp.Weights[kw] += weight
	fp.Total += weight
}

// categoryTokens splits a symptom-category tag such as "depressed_mood"
// into its component words, dropping fragments shorter than three letters.
func categoryTokens(tag string) []string {
	if tag == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(strings.ToLower(tag), "_") {
		if len(part) >= 3 {
			out = append(out, part)
		}
	}
	return out
}

// Get returns the fingerprint for a module ID, or nil.
func (idx *Index) Get(moduleID string) *Fingerprint {
	return idx.byModule[moduleID]
}

// Match sums the fingerprint weights of the given patient keywords. The
// second return is the share of the fingerprint's total weight they cover,
// in [0,1] before any severity multiplier.
func (fp *Fingerprint) Match(patientKeywords []string) (matched float64, share float64) {
	for _, kw := range patientKeywords {
		matched += fp.Weights[kw]
	}
	if fp.Total > 0 {
		share = matched / fp.Total
		if share > 1 {
			share = 1
		}
	}
	return matched, share
}

// CriteriaOverlap returns the fraction of the module's criteria keywords
// present in the given patient keyword set, in [0,1].
func (fp *Fingerprint) CriteriaOverlap(patientKeywords map[string]bool) float64 {
	if len(fp.Criteria) == 0 {
		return 0
	}
	var hits int
	for kw := range fp.Criteria {
		if patientKeywords[kw] {
			hits++
		}
	}
	return float64(hits) / float64(len(fp.Criteria))
}

package triage

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ksuri/mindtriage/internal/registry"
)

// SelectOptions configures a selection run.
type SelectOptions struct {
	// MaxModules caps the result length. Zero means the default of 5.
	MaxModules int
	// MinThreshold drops modules scoring below it. A threshold nobody
	// clears yields an empty result, not an error.
	MinThreshold float64
	// PrioritizeBySeverity boosts high-impact disorders when the patient
	// reports a severity level.
	PrioritizeBySeverity bool
}

// DefaultSelectOptions mirrors the standard triage parameters.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{
		MaxModules:           5,
		MinThreshold:         0.3,
		PrioritizeBySeverity: true,
	}
}

// severityBoost is added to high-impact disorders' scores when the patient
// reports the corresponding overall severity.
var severityBoost = map[string]float64{
	"mild":     0.05,
	"moderate": 0.10,
	"severe":   0.15,
	"extreme":  0.20,
}

// boostedModules are the high-impact disorders eligible for the boost.
var boostedModules = map[string]bool{"MDD": true, "BIPOLAR": true, "PTSD": true, "PANIC": true}

// Selector ranks all registered modules for a patient.
type Selector struct {
	reg    *registry.Registry
	scorer *Scorer
	logf   func(format string, args ...any)
}

// NewSelector creates a Selector over the given scorer. logf receives
// per-module scoring failures; nil routes them to stderr.
func NewSelector(reg *registry.Registry, scorer *Scorer, logf func(format string, args ...any)) *Selector {
	if logf == nil {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		}
	}
	return &Selector{reg: reg, scorer: scorer, logf: logf}
}

// Select scores every registered module against the patient and returns
// the ranked recommendations. A failure scoring one module is logged and
// that module skipped; the batch never fails as a whole. The sort is
// stable, so equal scores keep registration order.
func (s *Selector) Select(ctx context.Context, p *Patient, opts SelectOptions) []Relevancy {
	if opts.MaxModules <= 0 {
		opts.MaxModules = DefaultSelectOptions().MaxModules
	}

	var results []Relevancy
	for _, m := range s.reg.Modules() {
		rel, err := s.scorer.ScoreModule(ctx, m.ID, p)
		if err != nil {
			s.logf("scoring module %s failed: %v", m.ID, err)
			continue
		}
		if rel.Score >= opts.MinThreshold {
			results = append(results, *rel)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if opts.PrioritizeBySeverity && p.SeverityLevel != "" {
		results = applySeverityBoost(results, p.SeverityLevel)
	}

	if len(results) > opts.MaxModules {
		results = results[:opts.MaxModules]
	}
	return results
}

// applySeverityBoost raises high-impact disorders' scores by a severity
// dependent increment, then re-sorts.
func applySeverityBoost(results []Relevancy, severityLevel string) []Relevancy {
	boost, ok := severityBoost[strings.ToLower(severityLevel)]
	if !ok || boost == 0 {
		return results
	}
	for i := range results {
		if !boostedModules[results[i].ModuleID] {
			continue
		}
		results[i].Score += boost
		if results[i].Score > 1 {
			results[i].Score = 1
		}
		results[i].Reasons = append(results[i].Reasons, Reason{
			Kind:        ReasonSeverityMatch,
			Score:       boost,
			Explanation: fmt.Sprintf("Priority boost for %s severity and high-impact disorder", strings.ToLower(severityLevel)),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

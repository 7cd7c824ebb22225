package semantic

import (
	"context"
	"fmt"
	"os"
)

// FallbackScorer tries a primary scorer and degrades to a secondary one
// when the primary fails. The failure is logged, never propagated: a
// broken LLM provider must not break module selection.
type FallbackScorer struct {
	primary   Scorer
	secondary Scorer
	logf      func(format string, args ...any)
}

// WithFallback wraps primary so that any error routes the judgment to
// secondary. logf may be nil, in which case failures go to stderr.
func WithFallback(primary, secondary Scorer, logf func(format string, args ...any)) *FallbackScorer {
	if logf == nil {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		}
	}
	return &FallbackScorer{primary: primary, secondary: secondary, logf: logf}
}

func (f *FallbackScorer) Score(ctx context.Context, module ModuleDescriptor, patient PatientInput) (float64, error) {
	score, err := f.primary.Score(ctx, module, patient)
	if err == nil {
		return score, nil
	}
	f.logf("semantic scorer degraded for module %s: %v", module.ID, err)
	return f.secondary.Score(ctx, module, patient)
}

package triage

import (
	"fmt"
	"strings"
	"time"
)

// Statistics summarizes a selection run.
type Statistics struct {
	TotalModules          int
	AverageRelevancy      float64
	HighestRelevancy      float64
	LowestRelevancy       float64
	PriorityDistribution  map[string]int
	TotalEstimatedMins    int
	HighConfidenceModules int
}

// SelectionStatistics computes summary statistics over a selection result.
func SelectionStatistics(selected []Relevancy) Statistics {
	stats := Statistics{PriorityDistribution: make(map[string]int)}
	if len(selected) == 0 {
		return stats
	}

	stats.TotalModules = len(selected)
	stats.LowestRelevancy = selected[0].Score
	for _, rel := range selected {
		stats.AverageRelevancy += rel.Score
		if rel.Score > stats.HighestRelevancy {
			stats.HighestRelevancy = rel.Score
		}
		if rel.Score < stats.LowestRelevancy {
			stats.LowestRelevancy = rel.Score
		}
		stats.PriorityDistribution[rel.Priority.String()]++
		stats.TotalEstimatedMins += rel.EstimatedTimeMins
		if rel.Confidence >= 0.7 {
			stats.HighConfidenceModules++
		}
	}
	stats.AverageRelevancy /= float64(len(selected))
	return stats
}

// Report renders a human-readable selection report for clinicians.
func Report(selected []Relevancy, p *Patient, now time.Time) string {
	if len(selected) == 0 {
		return "No relevant modules identified for this patient."
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(rule)
	line("MODULE SELECTION REPORT")
	line(rule)
	line("")
	line("Patient Profile:")
	line("  - Age: %s", orUnspecified(ageString(p.Age)))
	line("  - Gender: %s", orUnspecified(p.Gender))
	line("  - Presenting Concern: %s", truncate(p.Concern, 100))
	line("  - Severity Level: %s", orUnspecified(p.SeverityLevel))
	line("  - Number of Symptoms: %d", len(p.Symptoms))
	line("")
	line("RECOMMENDED MODULES (%d total):", len(selected))
	line("%s", strings.Repeat("-", 40))

	for i, rel := range selected {
		line("%d. %s [%s]", i+1, rel.ModuleName, strings.ToUpper(rel.Priority.String()))
		line("   Relevancy Score: %.2f (Confidence: %.2f)", rel.Score, rel.Confidence)
		line("   Estimated Time: %d minutes", rel.EstimatedTimeMins)
		if len(rel.Reasons) > 0 {
			line("   Reasons for Recommendation:")
			reasons := rel.Reasons
			if len(reasons) > 3 {
				reasons = reasons[:3]
			}
			for _, r := range reasons {
				line("   - %s (%.2f): %s", titleCase(r.Kind.String()), r.Score, r.Explanation)
			}
		}
		line("")
	}

	stats := SelectionStatistics(selected)
	line("Total Estimated Administration Time: %d minutes", stats.TotalEstimatedMins)
	line("")
	line("ADMINISTRATION RECOMMENDATIONS:")
	line("%s", strings.Repeat("-", 30))

	byPriority := func(want Priority, heading string) {
		var names []string
		for _, rel := range selected {
			if rel.Priority == want {
				names = append(names, rel.ModuleName)
			}
		}
		if len(names) == 0 {
			return
		}
		line("%s", heading)
		for _, name := range names {
			line("  - %s", name)
		}
		line("")
	}
	byPriority(PriorityUrgent, "URGENT - Administer immediately:")
	byPriority(PriorityHigh, "HIGH PRIORITY - Administer in first session:")
	byPriority(PriorityMedium, "MEDIUM PRIORITY - Consider for comprehensive assessment:")

	line("%s", rule)
	line("Report Generated: %s", now.Format("2006-01-02 15:04:05"))
	b.WriteString(rule)
	return b.String()
}

func ageString(age int) string {
	if age <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", age)
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// titleCase renders a snake_case reason kind as a heading.
func titleCase(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

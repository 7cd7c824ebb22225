package risk

import "strings"

// Keyword lists scanned against free text. Phrases match on word
// boundaries, so "hope" does not fire inside "hopeless".
var (
	highRiskPhrases = []string{
		"kill myself", "end my life", "suicide", "want to die", "better off dead",
		"no point living", "end it all", "take my own life", "not worth living",
	}

	moderateRiskPhrases = []string{
		"hopeless", "worthless", "burden", "trapped", "no way out", "give up",
		"pointless", "empty", "numb", "disappear", "escape",
	}

	selfHarmPhrases = []string{
		"cut myself", "hurt myself", "self harm", "cutting", "burning myself",
		"hitting myself", "scratching", "self injury",
	}

	violencePhrases = []string{
		"hurt others", "kill someone", "violence", "revenge", "get back at",
		"make them pay", "harm others", "dangerous thoughts",
	}

	protectivePhrases = []string{
		"family", "children", "pets", "friends", "hope", "future", "goals",
		"religion", "therapy", "support", "love", "responsibility",
	}
)

// Per-match text increments. Accumulation is unbounded before the cap so
// several distinct phrases compound.
const (
	highRiskIncrement  = 0.8
	moderateIncrement  = 0.3
	selfHarmIncrement  = 0.6
	violenceIncrement  = 0.7
	protectiveDecrement = 0.2
)

// AnalyzeText scores free text for risk indicators. The result is capped
// at 1.0 but may go negative when protective language dominates.
func AnalyzeText(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}
	lower := strings.ToLower(text)

	score := 0.0
	for _, phrase := range highRiskPhrases {
		if containsPhrase(lower, phrase) {
			score += highRiskIncrement
		}
	}
	for _, phrase := range moderateRiskPhrases {
		if containsPhrase(lower, phrase) {
			score += moderateIncrement
		}
	}
	for _, phrase := range selfHarmPhrases {
		if containsPhrase(lower, phrase) {
			score += selfHarmIncrement
		}
	}
	for _, phrase := range violencePhrases {
		if containsPhrase(lower, phrase) {
			score += violenceIncrement
		}
	}
	for _, phrase := range protectivePhrases {
		if containsPhrase(lower, phrase) {
			score -= protectiveDecrement
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countProtective(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range protectivePhrases {
		if containsPhrase(lower, phrase) {
			count++
		}
	}
	return count
}

// containsPhrase reports whether phrase occurs in text delimited by
// non-letter characters on both sides. Both arguments must already be
// lowercase.
func containsPhrase(text, phrase string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		beforeOK := i == 0 || !isLetter(text[i-1])
		afterOK := end == len(text) || !isLetter(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

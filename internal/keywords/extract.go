// Package keywords extracts clinically relevant terms from free text.
// All downstream matching (fingerprints, criteria overlap, screening
// boosts) is defined over this extraction, so the tokenizer and stop
// list are fixed.
package keywords

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

// stopWords are high-frequency function words carrying no clinical signal.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "this": true, "that": true,
	"these": true, "those": true, "you": true, "your": true, "they": true,
	"their": true, "we": true, "our": true, "i": true, "my": true,
	"me": true, "him": true, "her": true, "his": true, "she": true,
	"he": true, "it": true, "its": true,
}

// Extract returns the deduplicated keywords of text: every non-stop-word
// token of three or more letters, plus every bigram of adjacent surviving
// tokens in their original text order. Input is lowercased first.
func Extract(text string) []string {
	tokens := Tokens(text)

	var out []string
	seen := make(map[string]bool, len(tokens)*2)
	add := func(kw string) {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}

	for _, tok := range tokens {
		add(tok)
	}
	for i := 0; i+1 < len(tokens); i++ {
		add(tokens[i] + " " + tokens[i+1])
	}
	return out
}

// Tokens returns the filtered token sequence of text in order, with
// duplicates retained. Used where positional adjacency matters.
func Tokens(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if !stopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Set returns the extraction of text as a membership set.
func Set(text string) map[string]bool {
	kws := Extract(text)
	set := make(map[string]bool, len(kws))
	for _, kw := range kws {
		set[kw] = true
	}
	return set
}

// IsStopWord reports whether w is on the extraction stop list.
func IsStopWord(w string) bool {
	return stopWords[w]
}

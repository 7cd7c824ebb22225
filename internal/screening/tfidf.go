package screening

import (
	"math"

	"github.com/ksuri/mindtriage/internal/keywords"
)

// vectorizer is a TF-IDF index over a fixed document set. Terms are the
// unigrams and bigrams produced by the keywords extractor. Documents are
// added once at build time; after fit the index is read-only.
type vectorizer struct {
	docFreq map[string]int
	docs    []map[string]float64 // l2-normalized TF-IDF vectors
	n       int
}

func newVectorizer(docs []string) *vectorizer {
	v := &vectorizer{
		docFreq: make(map[string]int),
		n:       len(docs),
	}
	termCounts := make([]map[string]int, len(docs))
	for i, doc := range docs {
		counts := termCount(doc)
		termCounts[i] = counts
		for term := range counts {
			v.docFreq[term]++
		}
	}
	v.docs = make([]map[string]float64, len(docs))
	for i, counts := range termCounts {
		v.docs[i] = v.vector(counts)
	}
	return v
}

// similarity returns the cosine similarity between the query text and
// document i, in [0,1].
func (v *vectorizer) similarity(query string, i int) float64 {
	q := v.vector(termCount(query))
	var dot float64
	for term, w := range q {
		dot += w * v.docs[i][term]
	}
	return dot
}

// vector converts raw term counts to a normalized TF-IDF vector. IDF uses
// the smoothed form ln((1+n)/(1+df)) + 1 so terms absent from the corpus
// still contribute to the query norm.
func (v *vectorizer) vector(counts map[string]int) map[string]float64 {
	var total int
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil
	}
	vec := make(map[string]float64, len(counts))
	var norm float64
	for term, c := range counts {
		tf := float64(c) / float64(total)
		idf := math.Log(float64(1+v.n)/float64(1+v.docFreq[term])) + 1
		w := tf * idf
		vec[term] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func termCount(text string) map[string]int {
	tokens := keywords.Tokens(text)
	counts := make(map[string]int, len(tokens)*2)
	for _, tok := range tokens {
		counts[tok]++
	}
	for i := 0; i+1 < len(tokens); i++ {
		counts[tokens[i]+" "+tokens[i+1]]++
	}
	return counts
}

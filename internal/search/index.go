package search

import (
	"sort"
	"strings"
)

const (
	// DefaultThreshold is the matching looseness on a 0.0 (exact) to 1.0
	// (anything) scale. A term matches a field when its raw score stays at
	// or below this.
	DefaultThreshold = 0.3
	// DefaultMaxResults caps a query's result list.
	DefaultMaxResults = 10
)

// Field biases skew ranking toward title hits. Bias is added to a field's
// raw score for ordering only; match acceptance always uses the raw score.
const (
	biasTitle       = 0.0
	biasDescription = 0.05
	biasTag         = 0.10
	biasCategory    = 0.15
)

// Match is one ranked search hit. Lower Score is a better match.
type Match struct {
	Document
	Score float64
}

// Index answers fuzzy queries over a fixed corpus. Rebuilding it per
// corpus fetch is deliberate: the corpus stays in the tens-to-hundreds,
// so there is nothing to gain from incremental indexing.
type Index struct {
	docs       []indexedDoc
	Threshold  float64
	MaxResults int
}

type indexedDoc struct {
	doc    Document
	fields []scoredField
}

type scoredField struct {
	text string // lowercased
	bias float64
}

// NewIndex builds an index over docs with the default threshold and cap.
func NewIndex(docs []Document) *Index {
	ix := &Index{Threshold: DefaultThreshold, MaxResults: DefaultMaxResults}
	for _, d := range docs {
		id := indexedDoc{doc: d}
		id.fields = append(id.fields, scoredField{strings.ToLower(d.Title), biasTitle})
		if d.Description != "" {
			id.fields = append(id.fields, scoredField{strings.ToLower(d.Description), biasDescription})
		}
		for _, tag := range d.Tags {
			id.fields = append(id.fields, scoredField{strings.ToLower(tag), biasTag})
		}
		if d.Category != "" {
			id.fields = append(id.fields, scoredField{strings.ToLower(d.Category), biasCategory})
		}
		ix.docs = append(ix.docs, id)
	}
	return ix
}

// Search ranks documents against query, best match first. An empty or
// whitespace-only query returns nil without touching the index. A
// document is returned when at least one query term matches some field
// within the threshold; unmatched terms degrade its score instead of
// excluding it. Ties keep corpus order (posts before projects,
// newest-first within each).
func (ix *Index) Search(query string) []Match {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var matches []Match
	for _, id := range ix.docs {
		total := 0.0
		matched := false
		for _, term := range terms {
			bestRaw, bestBiased := 1.0, 1.0
			for _, f := range id.fields {
				raw := termScore(term, f.text)
				if raw < bestRaw {
					bestRaw = raw
				}
				if raw <= ix.Threshold {
					if biased := raw + f.bias; biased < bestBiased {
						bestBiased = biased
					}
				}
			}
			if bestRaw <= ix.Threshold {
				matched = true
				total += bestBiased
			} else {
				total += 1.0
			}
		}
		if matched {
			matches = append(matches, Match{Document: id.doc, Score: total / float64(len(terms))})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	if ix.MaxResults > 0 && len(matches) > ix.MaxResults {
		matches = matches[:ix.MaxResults]
	}
	return matches
}

// termScore rates term against a lowercased field text: 0 for an exact
// word, a small length-proportional score for a word prefix, 0.25 for an
// inner substring, otherwise the normalized edit distance to the closest
// field word. 1.0 means no resemblance.
func termScore(term, text string) float64 {
	best := 1.0
	for _, word := range splitWords(text) {
		if strings.HasPrefix(word, term) {
			if s := 0.2 * (1 - float64(len(term))/float64(len(word))); s < best {
				best = s
			}
			continue
		}
		denom := len(term)
		if len(word) > denom {
			denom = len(word)
		}
		if s := float64(levenshtein(term, word)) / float64(denom); s < best {
			best = s
		}
	}
	if best > 0.25 && strings.Contains(text, term) {
		best = 0.25
	}
	return best
}

// splitWords splits field text on whitespace and common punctuation.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '-', '_', '(', ')', ',', '.', '/', ':', ';', '&', '—':
			return true
		}
		return false
	})
}

// levenshtein computes the edit distance between two byte strings.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

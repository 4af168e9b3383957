package search

import (
	"fmt"
	"testing"
)

func titledCorpus(titles ...string) []Document {
	docs := make([]Document, 0, len(titles))
	for i, title := range titles {
		docs = append(docs, Document{
			Type:  "post",
			Slug:  fmt.Sprintf("doc-%d", i),
			Title: title,
		})
	}
	return docs
}

func TestSearchBlankQueryReturnsNil(t *testing.T) {
	ix := NewIndex(titledCorpus("React Server Components"))
	for _, query := range []string{"", "   ", "\t"} {
		if got := ix.Search(query); got != nil {
			t.Errorf("Search(%q) = %v, want nil", query, got)
		}
	}
}

func TestSearchPrefixBeatsPartialMatch(t *testing.T) {
	ix := NewIndex(titledCorpus(
		"React Server Components",
		"React Native",
		"Vue Basics",
	))

	matches := ix.Search("react serv")

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if matches[0].Title != "React Server Components" {
		t.Errorf("first match = %q, want React Server Components", matches[0].Title)
	}
	if matches[1].Title != "React Native" {
		t.Errorf("second match = %q, want React Native", matches[1].Title)
	}
	if matches[0].Score >= matches[1].Score {
		t.Errorf("scores not strictly ordered: %f >= %f", matches[0].Score, matches[1].Score)
	}
	for _, m := range matches {
		if m.Title == "Vue Basics" {
			t.Error("Vue Basics should not match")
		}
	}
}

func TestSearchToleratesTypo(t *testing.T) {
	ix := NewIndex(titledCorpus("React Server Components", "Vue Basics"))

	matches := ix.Search("reach")

	if len(matches) != 1 || matches[0].Title != "React Server Components" {
		t.Fatalf("Search(reach) = %+v, want single React hit", matches)
	}
}

func TestSearchMatchesTagsAndCategory(t *testing.T) {
	ix := NewIndex([]Document{
		{Slug: "a", Title: "Vault Indexing", Tags: []string{"performance", "go"}},
		{Slug: "b", Title: "Weekend Build", Category: "performance"},
	})

	matches := ix.Search("performance")

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	// Tag bias (0.10) beats category bias (0.15).
	if matches[0].Slug != "a" || matches[1].Slug != "b" {
		t.Errorf("order = %s, %s; want a, b", matches[0].Slug, matches[1].Slug)
	}
}

func TestSearchTitleHitOutranksTagHit(t *testing.T) {
	ix := NewIndex([]Document{
		{Slug: "tagged", Title: "Something Else", Tags: []string{"caching"}},
		{Slug: "titled", Title: "Caching Strategies"},
	})

	matches := ix.Search("caching")

	if len(matches) != 2 || matches[0].Slug != "titled" {
		t.Fatalf("want title hit first, got %+v", matches)
	}
}

func TestSearchTiesKeepCorpusOrder(t *testing.T) {
	ix := NewIndex(titledCorpus("Go Concurrency", "Go Generics", "Go Modules"))

	matches := ix.Search("go")

	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i, want := range []string{"doc-0", "doc-1", "doc-2"} {
		if matches[i].Slug != want {
			t.Errorf("matches[%d].Slug = %s, want %s", i, matches[i].Slug, want)
		}
	}
}

func TestSearchCapsResults(t *testing.T) {
	var titles []string
	for i := 0; i < 15; i++ {
		titles = append(titles, fmt.Sprintf("Go Note %02d", i))
	}
	ix := NewIndex(titledCorpus(titles...))

	matches := ix.Search("go")

	if len(matches) != DefaultMaxResults {
		t.Fatalf("got %d matches, want %d", len(matches), DefaultMaxResults)
	}
	// Equal scores, so the cap keeps the earliest corpus entries.
	if matches[0].Slug != "doc-0" || matches[9].Slug != "doc-9" {
		t.Errorf("cap broke corpus order: first=%s last=%s", matches[0].Slug, matches[9].Slug)
	}
}

func TestSearchSplitsHyphenatedWords(t *testing.T) {
	ix := NewIndex(titledCorpus("Server-Side Rendering"))

	if matches := ix.Search("side"); len(matches) != 1 {
		t.Fatalf("Search(side) = %+v, want 1 match", matches)
	}
}

func TestTermScore(t *testing.T) {
	tests := []struct {
		term, text string
		want       float64
	}{
		{"react", "react server components", 0},
		{"serv", "react server components", 0.2 * (1 - 4.0/6.0)},
		{"erve", "react server components", 0.25},
		{"zzzz", "react server components", 1},
	}
	for _, tt := range tests {
		got := termScore(tt.term, tt.text)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("termScore(%q, %q) = %f, want %f", tt.term, tt.text, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"react", "react", 0},
		{"react", "reach", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

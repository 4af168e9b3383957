package search

// Modal is the interactive search surface's state machine: a query, the
// current ranked results, and a clamped selection index. It is UI-free so
// terminal and HTTP frontends can share the exact same behavior.
type Modal struct {
	index    *Index
	query    string
	results  []Match
	selected int
}

// NewModal returns a Modal over corpus with empty query and results.
func NewModal(corpus []Document) *Modal {
	return &Modal{index: NewIndex(corpus)}
}

// SetCorpus swaps the corpus, re-running the current query against it.
func (m *Modal) SetCorpus(corpus []Document) {
	m.index = NewIndex(corpus)
	m.SetQuery(m.query)
}

// SetQuery re-runs the search. The selection resets to 0 on every new
// result set; a blank query clears the results.
func (m *Modal) SetQuery(query string) {
	m.query = query
	m.results = m.index.Search(query)
	m.selected = 0
}

// Query returns the current query string.
func (m *Modal) Query() string { return m.query }

// Results returns the current ranked results.
func (m *Modal) Results() []Match { return m.results }

// Selected returns the current selection index. It is only meaningful
// while Results is non-empty.
func (m *Modal) Selected() int { return m.selected }

// MoveDown advances the selection, stopping at the last result.
func (m *Modal) MoveDown() {
	if m.selected < len(m.results)-1 {
		m.selected++
	}
}

// MoveUp retreats the selection, stopping at 0.
func (m *Modal) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// Current returns the selected match, or false when there are no results.
func (m *Modal) Current() (Match, bool) {
	if len(m.results) == 0 || m.selected >= len(m.results) {
		return Match{}, false
	}
	return m.results[m.selected], true
}

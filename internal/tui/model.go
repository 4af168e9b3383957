// Package tui implements the interactive content search screen. The
// corpus is fetched once when the screen opens; every keystroke re-runs
// the fuzzy query against the in-memory index.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codestz/codegarden/internal/search"
)

// CorpusLoader fetches the searchable corpus. Loading failures degrade to
// an empty corpus: the screen shows "no results" rather than an error.
type CorpusLoader func() ([]search.Document, error)

type corpusMsg struct {
	docs []search.Document
}

// Model is the bubbletea model for the search screen.
type Model struct {
	modal  *search.Modal
	loader CorpusLoader
	loaded bool

	// Choice holds the result accepted with Enter; empty URL means the
	// screen was dismissed.
	Choice search.Document
	Chosen bool
}

// NewModel returns a Model that loads its corpus via loader.
func NewModel(loader CorpusLoader) Model {
	return Model{
		modal:  search.NewModal(nil),
		loader: loader,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadCorpus
}

func (m Model) loadCorpus() tea.Msg {
	docs, err := m.loader()
	if err != nil {
		return corpusMsg{}
	}
	return corpusMsg{docs: docs}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case corpusMsg:
		m.loaded = true
		m.modal.SetCorpus(msg.docs)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyDown:
		m.modal.MoveDown()
		return m, nil
	case tea.KeyUp:
		m.modal.MoveUp()
		return m, nil
	case tea.KeyEnter:
		if match, ok := m.modal.Current(); ok {
			m.Choice = match.Document
			m.Chosen = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace:
		q := m.modal.Query()
		if q != "" {
			m.modal.SetQuery(q[:len(q)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.modal.SetQuery(m.modal.Query() + " ")
		return m, nil
	case tea.KeyRunes:
		m.modal.SetQuery(m.modal.Query() + string(msg.Runes))
		return m, nil
	}
	return m, nil
}

var (
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render("Search") + " " + m.modal.Query() + "█\n\n")

	if !m.loaded {
		b.WriteString(dimStyle.Render("Loading content...") + "\n")
		return b.String()
	}

	results := m.modal.Results()
	if m.modal.Query() != "" && len(results) == 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("No results for %q", m.modal.Query())) + "\n")
	}

	for i, r := range results {
		line := fmt.Sprintf("%s  %s", typeStyle.Render("["+r.Type+"]"), r.Title)
		if i == m.modal.Selected() {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		b.WriteString("    " + dimStyle.Render(r.URL) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("up/down navigate · enter open · esc close") + "\n")
	return b.String()
}

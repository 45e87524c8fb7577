package lists

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/lexi/internal/router"
	"github.com/tanvi/lexi/internal/screen"
	studyscreen "github.com/tanvi/lexi/internal/screens/study"
	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/ui/layout"
	"github.com/tanvi/lexi/internal/ui/theme"
	"github.com/tanvi/lexi/internal/vocab"
	"github.com/tanvi/lexi/internal/wordgraph"
)

// sortCycle is the order the S key walks through the sort keys.
var sortCycle = []vocab.SortKey{
	vocab.SortAlphabetical,
	vocab.SortProficiency,
	vocab.SortModified,
	vocab.SortReviewed,
}

var sortLabels = map[vocab.SortKey]string{
	vocab.SortAlphabetical: "A-Z",
	vocab.SortProficiency:  "proficiency",
	vocab.SortModified:     "recently modified",
	vocab.SortReviewed:     "recently reviewed",
}

// WordsScreen shows one list's entries with cycling sort order.
type WordsScreen struct {
	store *store.Store
	list  *vocab.WordList
	graph *wordgraph.Graph

	sortIdx  int
	selected int
	offset   int
}

var _ screen.Screen = (*WordsScreen)(nil)
var _ screen.KeyHintProvider = (*WordsScreen)(nil)

// NewWords creates a WordsScreen over an already-loaded list.
func NewWords(st *store.Store, list *vocab.WordList) *WordsScreen {
	return &WordsScreen{
		store: st,
		list:  list,
		graph: wordgraph.New(list),
	}
}

func (s *WordsScreen) Init() tea.Cmd {
	return nil
}

func (s *WordsScreen) Title() string {
	return s.list.Name
}

func (s *WordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Study"},
		{Key: "S", Description: "Sort"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordsScreen) sorted() []*vocab.WordEntry {
	ptrs := make([]*vocab.WordEntry, 0, len(s.list.Entries))
	for i := range s.list.Entries {
		ptrs = append(ptrs, &s.list.Entries[i])
	}
	return vocab.Sorted(ptrs, sortCycle[s.sortIdx])
}

func (s *WordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "s", "S":
		s.sortIdx = (s.sortIdx + 1) % len(sortCycle)
		s.selected = 0
		s.offset = 0
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.list.Entries)-1 {
			s.selected++
		}
	case "enter":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: studyscreen.New(s.list, s.store)}
		}
	}
	return s, nil
}

func (s *WordsScreen) View(width, height int) string {
	entries := s.sorted()
	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No words yet. Add one with: lexi word add <term>")
	}

	var b strings.Builder

	sortLine := fmt.Sprintf("  Sorted by %s    ◆ %d due of %d",
		sortLabels[sortCycle[s.sortIdx]], len(s.list.DueEntries()), len(entries))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(sortLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n")

	// Keep the selection inside the visible window.
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	end := s.offset + visible
	if end > len(entries) {
		end = len(entries)
	}

	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(entries[i], i == s.selected, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *WordsScreen) renderRow(e *vocab.WordEntry, selected bool, width int) string {
	prefix := "    "
	termStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "  ▸ "
		termStyle = termStyle.Foreground(theme.Primary).Bold(true)
	}

	prof := lipgloss.NewStyle().Foreground(theme.TextDim)
	if e.Due() {
		prof = prof.Foreground(theme.Accent)
	}

	row := prefix + termStyle.Render(fmt.Sprintf("%-20s", e.Term)) +
		prof.Render(fmt.Sprintf("%4d", e.Proficiency))

	if lemma := s.graph.Lemma(e); lemma != nil {
		row += lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("  ← " + lemma.Term)
	} else if derivs := s.graph.Derivatives(e.ID); len(derivs) > 0 {
		names := make([]string, 0, len(derivs))
		for _, d := range derivs {
			names = append(names, d.Term)
		}
		row += lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("  → " + strings.Join(names, ", "))
	}

	if selected && e.Definition != "" {
		def := e.Definition
		if maxLen := width - lipgloss.Width(row) - 6; maxLen > 10 {
			if r := []rune(def); len(r) > maxLen {
				def = string(r[:maxLen-3]) + "..."
			}
		}
		row += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  " + def)
	}

	return row
}

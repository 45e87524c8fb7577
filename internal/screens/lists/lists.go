// Package lists implements the word list browser screens.
package lists

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/lexi/internal/router"
	"github.com/tanvi/lexi/internal/screen"
	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/ui/layout"
	"github.com/tanvi/lexi/internal/ui/theme"
	"github.com/tanvi/lexi/internal/vocab"
)

// listRow is one list with its counts, loaded up front so the browser
// can render without further queries.
type listRow struct {
	List  *vocab.WordList
	Words int
	Due   int
}

type listsLoadedMsg struct {
	Rows []listRow
	Err  error
}

// ListsScreen shows every word list, most recently used first.
type ListsScreen struct {
	store    *store.Store
	rows     []listRow
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ListsScreen)(nil)
var _ screen.KeyHintProvider = (*ListsScreen)(nil)

// New creates a ListsScreen backed by the given store.
func New(st *store.Store) *ListsScreen {
	return &ListsScreen{store: st}
}

func (s *ListsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		lists, err := s.store.Lists().All(ctx)
		if err != nil {
			return listsLoadedMsg{Err: err}
		}

		rows := make([]listRow, 0, len(lists))
		for i := range lists {
			full, err := s.store.Lists().ByID(ctx, lists[i].ID)
			if err != nil {
				return listsLoadedMsg{Err: err}
			}
			rows = append(rows, listRow{
				List:  full,
				Words: len(full.Entries),
				Due:   len(full.DueEntries()),
			})
		}
		return listsLoadedMsg{Rows: rows}
	}
}

func (s *ListsScreen) Title() string {
	return "Word Lists"
}

func (s *ListsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Rows
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.rows) {
				row := s.rows[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewWords(s.store, row.List)}
				}
			}
		}
	}
	return s, nil
}

func (s *ListsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading lists...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No lists yet. Create one with: lexi list create <name>")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range s.rows {
		prefix := "    "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
		}

		counts := fmt.Sprintf("%d words", row.Words)
		if row.Due > 0 {
			counts += lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render(fmt.Sprintf("  ◆ %d due", row.Due))
		}

		line := prefix + nameStyle.Render(fmt.Sprintf("%-24s", row.List.Name)) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// Package home implements the landing screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/lexi/internal/router"
	"github.com/tanvi/lexi/internal/screen"
	listscreen "github.com/tanvi/lexi/internal/screens/lists"
	studyscreen "github.com/tanvi/lexi/internal/screens/study"
	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/ui/components"
	"github.com/tanvi/lexi/internal/ui/theme"
)

type statsLoadedMsg struct {
	Lists int64
	Words int64
	Due   int64
	Err   error
}

// HomeScreen is the main landing screen.
type HomeScreen struct {
	store *store.Store
	menu  components.Menu

	listCount int64
	wordCount int64
	dueCount  int64
	loaded    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen backed by the given store.
func New(st *store.Store) *HomeScreen {
	h := &HomeScreen{store: st}

	items := []components.MenuItem{
		{Label: "STUDY", Action: h.startStudy},
		{Label: "WORD LISTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: listscreen.New(st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// startStudy opens a session on the most recently used list.
func (h *HomeScreen) startStudy() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		lists, err := h.store.Lists().All(ctx)
		if err != nil || len(lists) == 0 {
			return router.PushScreenMsg{Screen: listscreen.New(h.store)}
		}
		full, err := h.store.Lists().ByID(ctx, lists[0].ID)
		if err != nil {
			return router.PushScreenMsg{Screen: listscreen.New(h.store)}
		}
		return router.PushScreenMsg{Screen: studyscreen.New(full, h.store)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		lists, err := h.store.Lists().Count(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		words, err := h.store.Entries().Count(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		due, err := h.store.Entries().DueCount(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Lists: lists, Words: words, Due: due}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.listCount = msg.Lists
			h.wordCount = msg.Words
			h.dueCount = msg.Due
			h.loaded = true
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L E X I")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("your personal word keeper")
	sections = append(sections, title+"\n"+subtitle)

	if h.loaded {
		stats := fmt.Sprintf("%d lists  ·  %d words  ·  ", h.listCount, h.wordCount)
		statsLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats) +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d due", h.dueCount))
		sections = append(sections, statsLine)
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

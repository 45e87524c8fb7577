// Package app wires the Bubble Tea program together.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/lexi/internal/router"
	"github.com/tanvi/lexi/internal/screen"
	"github.com/tanvi/lexi/internal/screens/home"
	studyscreen "github.com/tanvi/lexi/internal/screens/study"
	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/ui/layout"
	"github.com/tanvi/lexi/internal/vocab"
)

type dueCountMsg struct {
	Due int64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *store.Store
	width  int
	height int
	due    int64

	// initial is pushed above home on startup, for CLI entry points that
	// jump straight into a screen.
	initial screen.Screen
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(st *store.Store) AppModel {
	return AppModel{
		router: router.New(home.New(st)),
		store:  st,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.refreshDue()}
	if m.initial != nil {
		initial := m.initial
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: initial}
		})
	}
	return tea.Batch(cmds...)
}

// refreshDue recounts due entries for the header badge.
func (m AppModel) refreshDue() tea.Cmd {
	return func() tea.Msg {
		due, err := m.store.Entries().DueCount(context.Background())
		if err != nil {
			return nil
		}
		return dueCountMsg{Due: due}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dueCountMsg:
		m.due = msg.Due
		return m, nil

	case router.PopScreenMsg:
		// Leaving a screen is when the counts are most likely stale.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshDue())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, int(m.due), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an open store.
func Run(st *store.Store) error {
	return run(newAppModel(st))
}

// RunStudy starts the program directly in a study session on the given
// list, with the home screen beneath it on the stack.
func RunStudy(st *store.Store, list *vocab.WordList) error {
	m := newAppModel(st)
	m.initial = studyscreen.New(list, st)
	return run(m)
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// Package summary shows the end-of-session results screen.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/lexi/internal/router"
	"github.com/tanvi/lexi/internal/screen"
	"github.com/tanvi/lexi/internal/ui/layout"
	"github.com/tanvi/lexi/internal/ui/theme"
)

// WordResult is one word's proficiency movement during the session.
type WordResult struct {
	Term   string
	Before int
	After  int
}

// Summary holds the results of a finished review session.
type Summary struct {
	ListName     string
	Answered     int
	Correct      int
	Words        []WordResult
	RemainingDue int
}

// Accuracy returns the fraction of scored answers that were correct.
func (s *Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// SummaryScreen displays session results.
type SummaryScreen struct {
	summary *Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the given results.
func New(s *Summary) *SummaryScreen {
	return &SummaryScreen{summary: s}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session Complete"))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sum.ListName))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Answered: %d    Correct: %d    Accuracy: %d%%",
		sum.Answered, sum.Correct, int(sum.Accuracy()*100))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	if len(sum.Words) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Border).
			Render(strings.Repeat("─", min(width-8, 50))))
		b.WriteString("\n\n")

		var rows strings.Builder
		for _, w := range sum.Words {
			delta := w.After - w.Before
			arrow := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("+%d", delta))
			if delta < 0 {
				arrow = lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("%d", delta))
			}
			rows.WriteString(fmt.Sprintf("%-20s %3d → %3d  %s\n", w.Term, w.Before, w.After, arrow))
		}
		block := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.TrimRight(rows.String(), "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	if sum.RemainingDue > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d words still due for review", sum.RemainingDue)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("Nothing left due. Nice work."))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to go back"))

	return b.String()
}

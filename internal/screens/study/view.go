package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tanvi/lexi/internal/scoring"
	enginepkg "github.com/tanvi/lexi/internal/study"
	"github.com/tanvi/lexi/internal/ui/components"
	"github.com/tanvi/lexi/internal/ui/theme"
	"github.com/tanvi/lexi/internal/vocab"
)

func (s *StudyScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return s.renderQuitConfirm(width)
	}
	if s.state.Done() && len(s.state.Queue) == 0 {
		return s.renderNothingDue(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *StudyScreen) renderQuestionView(width int) string {
	q := s.engine.CurrentQuestion(s.state)
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing question...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Word %d/%d", s.state.Index+1, len(s.state.Queue)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d correct",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.state.Correct,
			s.state.Answered,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	switch q.Kind {
	case enginepkg.KindRecognition:
		b.WriteString(s.renderRecognition(q, width))
	case enginepkg.KindFillIn:
		b.WriteString(s.renderFillIn(q, width))
	case enginepkg.KindMultipleChoice:
		b.WriteString(s.renderMultipleChoice(q, width))
	}

	return b.String()
}

func (s *StudyScreen) renderRecognition(q *enginepkg.Question, width int) string {
	var b strings.Builder

	label := "Do you know this word?"
	switch q.PromptField {
	case enginepkg.FieldDefinition:
		label = "Do you know the word for this definition?"
	case enginepkg.FieldPronunciation:
		label = "Do you know the word pronounced like this?"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(label))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if s.revealed {
		if e := s.list.EntryByID(q.EntryID); e != nil {
			card := renderEntryCard(e, min(width-8, 70))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Space to peek at the card"))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Y I know it    N Not yet"))

	return b.String()
}

func (s *StudyScreen) renderFillIn(q *enginepkg.Question, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Which word matches this definition?"))
	b.WriteString("\n\n")

	defStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, defStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Word: " + s.input.View())
	b.WriteString(answerLine)

	return b.String()
}

func (s *StudyScreen) renderMultipleChoice(q *enginepkg.Question, width int) string {
	prompt := q.Prompt
	if q.PromptField == enginepkg.FieldPronunciation {
		prompt = fmt.Sprintf("How is %q pronounced?", q.Prompt)
	}

	options := make([]string, 0, len(q.Choices))
	for _, c := range q.Choices {
		options = append(options, c.Text)
	}

	mc := components.NewMultiChoice(prompt, options, q.CorrectIndex)
	mc.Selected = s.mcSelected

	var b strings.Builder
	b.WriteString(mc.View())

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the answer feedback overlay.
func (s *StudyScreen) renderFeedback(width int) string {
	q := s.state.Current
	entry := (*vocab.WordEntry)(nil)
	if q != nil {
		entry = s.list.EntryByID(q.EntryID)
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if scoring.Correct(s.state.LastOutcome) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if entry != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("The word was: %s", entry.Term)))
		}
	}

	b.WriteString("\n\n")

	if entry != nil {
		card := renderEntryCard(entry, min(width-8, 70))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderEntryCard renders a word card with whatever fields the entry has.
func renderEntryCard(e *vocab.WordEntry, width int) string {
	var b strings.Builder

	head := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(e.Term)
	if e.Pronunciation != "" {
		head += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.Pronunciation)
	}
	if e.PartOfSpeech != "" {
		head += "  " + lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).Render(e.PartOfSpeech)
	}
	b.WriteString(head)

	if e.Definition != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(e.Definition))
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(b.String())
}

func (s *StudyScreen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Progress so far is already saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Y end session    N keep going"))
	return b.String()
}

func (s *StudyScreen) renderNothingDue(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("All caught up!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Nothing in %q is due for review right now.", s.list.Name)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back"))
	return b.String()
}

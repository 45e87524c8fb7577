// Package study implements the interactive review session screen.
package study

import (
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/router"
	"github.com/tanvi/lexi/internal/scoring"
	"github.com/tanvi/lexi/internal/screen"
	"github.com/tanvi/lexi/internal/screens/summary"
	enginepkg "github.com/tanvi/lexi/internal/study"
	"github.com/tanvi/lexi/internal/ui/components"
	"github.com/tanvi/lexi/internal/ui/layout"
	"github.com/tanvi/lexi/internal/vocab"
)

// StudyScreen runs one review session over a list's due entries.
type StudyScreen struct {
	list   *vocab.WordList
	engine *enginepkg.Engine
	state  enginepkg.State

	input      components.TextInput
	mcSelected int
	revealed   bool

	showingFeedback    bool
	showingQuitConfirm bool

	// Proficiency at queue build time, for the session summary.
	startProf map[uuid.UUID]int
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen for the given list. Scored entries are
// persisted through persist, which may be nil in previews.
func New(list *vocab.WordList, persist enginepkg.Persister) *StudyScreen {
	engine := enginepkg.NewEngine(list, enginepkg.Config{
		Rand:      enginepkg.NewRand(),
		Persister: persist,
	})
	return &StudyScreen{
		list:   list,
		engine: engine,
		input:  components.NewTextInput("Type the word...", 60),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	s.state = s.engine.PrepareQueue()

	s.startProf = make(map[uuid.UUID]int, len(s.state.Queue))
	for _, id := range s.state.Queue {
		if e := s.list.EntryByID(id); e != nil {
			s.startProf[id] = e.Proficiency
		}
	}

	if s.state.Done() {
		return nil
	}
	s.resetInputs()
	return s.input.Init()
}

func (s *StudyScreen) Title() string {
	return "Study: " + s.list.Name
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.state.Done() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
		}
	}

	q := s.engine.CurrentQuestion(s.state)
	hints := []layout.KeyHint{}
	if q != nil {
		switch q.Kind {
		case enginepkg.KindRecognition:
			hints = append(hints,
				layout.KeyHint{Key: "Space", Description: "Reveal"},
				layout.KeyHint{Key: "Y/N", Description: "Know it?"},
			)
		case enginepkg.KindFillIn:
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
		case enginepkg.KindMultipleChoice:
			hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Choose"})
		}
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Skip"},
		layout.KeyHint{Key: "P", Description: "Previous"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
	return hints
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.activeFillIn() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// activeFillIn reports whether keystrokes should flow to the text input.
func (s *StudyScreen) activeFillIn() bool {
	if s.showingFeedback || s.showingQuitConfirm || s.state.Done() {
		return false
	}
	q := s.engine.CurrentQuestion(s.state)
	return q != nil && q.Kind == enginepkg.KindFillIn
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.state.Done() {
		if len(s.state.Queue) == 0 {
			// Nothing was due; there is no summary worth showing.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "tab":
		s.state = s.engine.Advance(s.state)
		return s.afterMove()
	case "p", "P":
		if !s.activeFillIn() || key == "P" {
			s.state = s.engine.GoPrevious(s.state)
			return s.afterMove()
		}
	}

	q := s.engine.CurrentQuestion(s.state)
	if q == nil {
		return s, nil
	}

	switch q.Kind {
	case enginepkg.KindRecognition:
		return s.handleRecognitionKey(key)
	case enginepkg.KindFillIn:
		return s.handleFillInKey(msg)
	case enginepkg.KindMultipleChoice:
		return s.handleChoiceKey(key, q)
	}

	return s, nil
}

func (s *StudyScreen) handleRecognitionKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "space":
		s.revealed = true
	case "y", "Y":
		s.state = s.engine.SubmitAnswer(s.state, enginepkg.Answer{Know: true})
		return s.afterMove()
	case "n", "N":
		s.state = s.engine.SubmitAnswer(s.state, enginepkg.Answer{Know: false})
		return s.afterMove()
	}
	return s, nil
}

func (s *StudyScreen) handleFillInKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		text := s.input.Value()
		if text == "" {
			return s, nil
		}
		s.state = s.engine.SubmitAnswer(s.state, enginepkg.Answer{Text: text})
		s.input.Submit(scoring.Correct(s.state.LastOutcome))
		s.showingFeedback = true
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StudyScreen) handleChoiceKey(key string, q *enginepkg.Question) (screen.Screen, tea.Cmd) {
	switch key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.Choices) {
			s.mcSelected = idx
			return s.submitChoice()
		}
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < len(q.Choices)-1 {
			s.mcSelected++
		}
	case "enter":
		return s.submitChoice()
	}
	return s, nil
}

func (s *StudyScreen) submitChoice() (screen.Screen, tea.Cmd) {
	s.state = s.engine.SubmitAnswer(s.state, enginepkg.Answer{Choice: s.mcSelected})
	s.showingFeedback = true
	return s, nil
}

func (s *StudyScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.state = s.engine.Advance(s.state)
	return s.afterMove()
}

// afterMove resets per-question UI state after the engine position changed.
func (s *StudyScreen) afterMove() (screen.Screen, tea.Cmd) {
	if s.state.Done() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.resetInputs()
	return s, s.input.Init()
}

func (s *StudyScreen) resetInputs() {
	s.input = components.NewTextInput("Type the word...", 60)
	s.mcSelected = 0
	s.revealed = false
}

func (s *StudyScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	sum := s.buildSummary()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *StudyScreen) buildSummary() *summary.Summary {
	sum := &summary.Summary{
		ListName: s.list.Name,
		Answered: s.state.Answered,
		Correct:  s.state.Correct,
	}
	for _, id := range s.state.Queue {
		e := s.list.EntryByID(id)
		if e == nil {
			continue
		}
		before, ok := s.startProf[id]
		if !ok || before == e.Proficiency {
			continue
		}
		sum.Words = append(sum.Words, summary.WordResult{
			Term:   e.Term,
			Before: before,
			After:  e.Proficiency,
		})
	}
	sum.RemainingDue = len(s.list.DueEntries())
	return sum
}

package study

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/vocab"
)

func testStudyList(profs ...int) *vocab.WordList {
	list := &vocab.WordList{ID: uuid.New(), Name: "GRE Prep"}
	words := []string{"taciturn", "ephemeral", "luminous", "laconic", "garrulous"}
	for i, p := range profs {
		list.Entries = append(list.Entries, vocab.WordEntry{
			ID:          uuid.New(),
			ListID:      list.ID,
			Term:        words[i%len(words)],
			Definition:  "definition of " + words[i%len(words)],
			Proficiency: p,
		})
	}
	return list
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestStudyScreen_QueueHoldsOnlyDueEntries(t *testing.T) {
	s := New(testStudyList(0, 50, 89, 90, 100), nil)
	s.Init()

	if got := len(s.state.Queue); got != 3 {
		t.Fatalf("queue length = %d, want 3", got)
	}
	for _, id := range s.state.Queue {
		e := s.list.EntryByID(id)
		if e == nil || !e.Due() {
			t.Errorf("queue holds non-due entry %v", id)
		}
	}
}

func TestStudyScreen_NothingDue(t *testing.T) {
	s := New(testStudyList(95, 100), nil)
	s.Init()

	if !s.state.Done() {
		t.Fatal("expected an immediately complete session")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "All caught up") {
		t.Errorf("view missing caught-up notice:\n%s", view)
	}
}

func TestStudyScreen_TabSkipsAndScores(t *testing.T) {
	s := New(testStudyList(10, 20, 30), nil)
	s.Init()

	before := s.state.Index
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	if s.state.Done() {
		return // skipped off the end of a short queue
	}
	if s.state.Index != before+1 {
		t.Errorf("Index = %d, want %d", s.state.Index, before+1)
	}
	if s.state.Answered != 1 {
		t.Errorf("Answered = %d, want 1 (skip scores a zero delta)", s.state.Answered)
	}
	if s.state.Correct != 0 {
		t.Errorf("Correct = %d, want 0", s.state.Correct)
	}
}

func TestStudyScreen_QuitConfirmFlow(t *testing.T) {
	s := New(testStudyList(10, 20, 30), nil)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirm after Esc")
	}
	if !strings.Contains(s.View(80, 24), "End this session?") {
		t.Error("quit confirm view missing prompt")
	}

	s.Update(key("n"))
	if s.showingQuitConfirm {
		t.Fatal("expected N to dismiss quit confirm")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected Y to end the session")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Errorf("expected sessionEndMsg, got %T", cmd())
	}
}

func TestStudyScreen_TitleAndHints(t *testing.T) {
	s := New(testStudyList(10), nil)
	s.Init()

	if got := s.Title(); got != "Study: GRE Prep" {
		t.Errorf("Title = %q", got)
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

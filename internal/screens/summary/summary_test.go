package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testSummary() *Summary {
	return &Summary{
		ListName: "GRE Prep",
		Answered: 14,
		Correct:  11,
		Words: []WordResult{
			{Term: "taciturn", Before: 20, After: 50},
			{Term: "ephemeral", Before: 60, After: 55},
		},
		RemainingDue: 3,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	for _, want := range []string{"GRE Prep", "taciturn", "ephemeral", "78%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_AccuracyZeroAnswered(t *testing.T) {
	s := &Summary{ListName: "Empty"}
	if got := s.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}

package vocab

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewEntry_TrimsTerm(t *testing.T) {
	e, err := NewEntry(uuid.New(), "  ephemeral  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Term != "ephemeral" {
		t.Errorf("Term = %q, want %q", e.Term, "ephemeral")
	}
}

func TestNewEntry_EmptyTerm(t *testing.T) {
	for _, term := range []string{"", "   ", "\t\n"} {
		if _, err := NewEntry(uuid.New(), term); !errors.Is(err, ErrEmptyTerm) {
			t.Errorf("NewEntry(%q): err = %v, want ErrEmptyTerm", term, err)
		}
	}
}

func TestClampProficiency(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-50, 0},
		{-1, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{101, 100},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := ClampProficiency(tt.in); got != tt.want {
			t.Errorf("ClampProficiency(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAddProficiency_ClampsAndStamps(t *testing.T) {
	e := &WordEntry{ID: uuid.New(), Term: "serendipity", Proficiency: 95}
	before := e.ModifiedAt

	e.AddProficiency(30)
	if e.Proficiency != 100 {
		t.Errorf("Proficiency = %d, want 100 (clamped)", e.Proficiency)
	}
	if !e.ModifiedAt.After(before) {
		t.Error("ModifiedAt not stamped on proficiency write")
	}

	e.AddProficiency(-500)
	if e.Proficiency != 0 {
		t.Errorf("Proficiency = %d, want 0 (clamped)", e.Proficiency)
	}
}

func TestValidateLink(t *testing.T) {
	listID := uuid.New()
	a := &WordEntry{ID: uuid.New(), ListID: listID}
	b := &WordEntry{ID: uuid.New(), ListID: listID}
	other := &WordEntry{ID: uuid.New(), ListID: uuid.New()}

	if err := ValidateLink(a, b); err != nil {
		t.Errorf("same-list link: unexpected error %v", err)
	}
	if err := ValidateLink(a, a); !errors.Is(err, ErrSelfLink) {
		t.Errorf("self link: err = %v, want ErrSelfLink", err)
	}
	if err := ValidateLink(a, other); !errors.Is(err, ErrCrossList) {
		t.Errorf("cross-list link: err = %v, want ErrCrossList", err)
	}
}

func TestListTouch_Monotonic(t *testing.T) {
	l, err := NewList("verbs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Step the clock backwards; UpdatedAt must not regress.
	orig := timeNow
	defer func() { timeNow = orig }()
	past := l.UpdatedAt.Add(-time.Hour)
	timeNow = func() time.Time { return past }

	updatedBefore := l.UpdatedAt
	l.Touch()
	if l.UpdatedAt.Before(updatedBefore) {
		t.Error("UpdatedAt regressed after Touch with a backwards clock")
	}
}

func TestNewList_LastUsedInvariant(t *testing.T) {
	l, err := NewList("nouns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.LastUsedAt.Before(l.CreatedAt) {
		t.Error("LastUsedAt < CreatedAt on a fresh list")
	}
	if l.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", l.SchemaVersion, SchemaVersion)
	}
}

func TestDueEntries(t *testing.T) {
	l := &WordList{ID: uuid.New()}
	l.Entries = []WordEntry{
		{ID: uuid.New(), ListID: l.ID, Term: "a", Proficiency: 0},
		{ID: uuid.New(), ListID: l.ID, Term: "b", Proficiency: 89},
		{ID: uuid.New(), ListID: l.ID, Term: "c", Proficiency: 90},
		{ID: uuid.New(), ListID: l.ID, Term: "d", Proficiency: 100},
	}

	due := l.DueEntries()
	if len(due) != 2 {
		t.Fatalf("got %d due entries, want 2", len(due))
	}
	if due[0].Term != "a" || due[1].Term != "b" {
		t.Errorf("due = [%s %s], want [a b]", due[0].Term, due[1].Term)
	}
}

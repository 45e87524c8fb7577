package study

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/scoring"
	"github.com/tanvi/lexi/internal/vocab"
)

// fakeRand replays a fixed roll sequence (cycling) and leaves shuffles
// as the identity permutation.
type fakeRand struct {
	rolls []int
	pos   int
}

func (r *fakeRand) IntN(n int) int {
	if len(r.rolls) == 0 {
		return 0
	}
	v := r.rolls[r.pos%len(r.rolls)]
	r.pos++
	return v % n
}

func (r *fakeRand) Shuffle(int, func(i, j int)) {}

type testEntry struct {
	term       string
	definition string
	prof       int
}

func makeList(entries ...testEntry) *vocab.WordList {
	list := &vocab.WordList{ID: uuid.New(), Name: "test"}
	for _, te := range entries {
		list.Entries = append(list.Entries, vocab.WordEntry{
			ID:          uuid.New(),
			ListID:      list.ID,
			Term:        te.term,
			Definition:  te.definition,
			Proficiency: te.prof,
		})
	}
	return list
}

func engineWithRolls(list *vocab.WordList, rolls ...int) *Engine {
	return NewEngine(list, Config{Rand: &fakeRand{rolls: rolls}})
}

func TestPrepareQueue_NoDueEntries(t *testing.T) {
	list := makeList(
		testEntry{term: "a", prof: 90},
		testEntry{term: "b", prof: 100},
	)
	e := engineWithRolls(list, 0)

	st := e.PrepareQueue()
	if st.Status != StatusComplete {
		t.Fatalf("Status = %v, want StatusComplete", st.Status)
	}
	if len(st.Queue) != 0 {
		t.Errorf("Queue length = %d, want 0", len(st.Queue))
	}
	if e.CurrentQuestion(st) != nil {
		t.Error("CurrentQuestion non-nil on a complete session")
	}
}

func TestPrepareQueue_FiltersByDueThreshold(t *testing.T) {
	list := makeList(
		testEntry{term: "due-low", prof: 0},
		testEntry{term: "due-edge", prof: 89},
		testEntry{term: "done-edge", prof: 90},
		testEntry{term: "done", prof: 100},
	)
	e := engineWithRolls(list, 0, 0)

	st := e.PrepareQueue()
	if st.Status != StatusActive {
		t.Fatalf("Status = %v, want StatusActive", st.Status)
	}
	if len(st.Queue) != 2 {
		t.Fatalf("Queue length = %d, want 2", len(st.Queue))
	}
	if st.SessionID == "" {
		t.Error("SessionID not assigned")
	}
}

func TestEndToEnd_RecognitionKnow(t *testing.T) {
	list := makeList(
		testEntry{term: "A", prof: 0},
		testEntry{term: "B", prof: 95},
	)
	// Roll 0 → recognition; field roll 0 → term prompt.
	e := engineWithRolls(list, 0, 0)

	st := e.PrepareQueue()
	if len(st.Queue) != 1 {
		t.Fatalf("Queue = %d entries, want 1 (only A is due)", len(st.Queue))
	}
	q := e.CurrentQuestion(st)
	if q == nil || q.Kind != KindRecognition {
		t.Fatalf("question = %+v, want recognition", q)
	}

	st = e.SubmitAnswer(st, Answer{Know: true})

	a := list.EntryByID(st.Queue[0])
	if a.Proficiency != 5 {
		t.Errorf("A proficiency = %d, want 5", a.Proficiency)
	}
	if a.LastReviewedAt == nil {
		t.Error("A LastReviewedAt not stamped")
	}
	// Recognition auto-advances; single-entry queue is now exhausted.
	if st.Status != StatusComplete {
		t.Errorf("Status = %v, want StatusComplete after auto-advance", st.Status)
	}
}

func TestSubmitAnswer_ScoresAtMostOnce(t *testing.T) {
	list := makeList(testEntry{term: "term", definition: "a word or phrase", prof: 0})
	// Roll 40 → fill-in.
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	if e.CurrentQuestion(st).Kind != KindFillIn {
		t.Fatalf("Kind = %v, want fill-in", e.CurrentQuestion(st).Kind)
	}

	st = e.SubmitAnswer(st, Answer{Text: " Term "})
	st = e.SubmitAnswer(st, Answer{Text: " Term "})

	entry := &list.Entries[0]
	if entry.Proficiency != 30 {
		t.Errorf("proficiency = %d after double submit, want 30 (single delta)", entry.Proficiency)
	}
	if st.Answered != 1 {
		t.Errorf("Answered = %d, want 1", st.Answered)
	}
	if st.Status != StatusActive {
		t.Error("fill-in must hold position until an explicit Advance")
	}
}

func TestSubmitAnswer_FillInWhitespaceAndCase(t *testing.T) {
	list := makeList(testEntry{term: "ad hoc", definition: "for this purpose", prof: 0})
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	st = e.SubmitAnswer(st, Answer{Text: "  AD  HOC "})

	if st.LastOutcome != scoring.FillInCorrect {
		t.Errorf("LastOutcome = %s, want fillin-correct", st.LastOutcome)
	}
}

func TestAdvance_SkipScoresZeroDelta(t *testing.T) {
	list := makeList(
		testEntry{term: "first", definition: "def one", prof: 20},
		testEntry{term: "second", definition: "def two", prof: 20},
	)
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	skipped := list.EntryByID(st.Queue[0])

	st = e.Advance(st)

	if skipped.Proficiency != 20 {
		t.Errorf("skip changed proficiency to %d", skipped.Proficiency)
	}
	if skipped.LastReviewedAt == nil {
		t.Error("skip must stamp LastReviewedAt")
	}
	if st.Index != 1 || st.Status != StatusActive {
		t.Errorf("Index = %d Status = %v, want 1/Active", st.Index, st.Status)
	}
	if st.Answered != 1 {
		t.Errorf("Answered = %d, want 1 (skip counts as scored)", st.Answered)
	}
}

func TestAdvance_PastEndCompletes(t *testing.T) {
	list := makeList(testEntry{term: "only", definition: "single", prof: 0})
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	st = e.SubmitAnswer(st, Answer{Text: "only"})
	st = e.Advance(st)

	if st.Status != StatusComplete {
		t.Errorf("Status = %v, want StatusComplete", st.Status)
	}
	if st.Current != nil {
		t.Error("Current question not cleared on completion")
	}
}

func TestGoPrevious_RebuildsFreshQuestion(t *testing.T) {
	list := makeList(
		testEntry{term: "first", definition: "def one", prof: 0},
		testEntry{term: "second", definition: "def two", prof: 0},
	)
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	st = e.SubmitAnswer(st, Answer{Text: "first"})
	st = e.Advance(st)
	if st.Index != 1 {
		t.Fatalf("Index = %d, want 1", st.Index)
	}

	st = e.GoPrevious(st)
	if st.Index != 0 {
		t.Fatalf("Index = %d after GoPrevious, want 0", st.Index)
	}
	q := e.CurrentQuestion(st)
	if q == nil || q.Scored {
		t.Error("GoPrevious must build a fresh, unscored question")
	}
}

func TestGoPrevious_NoOpAtZero(t *testing.T) {
	list := makeList(testEntry{term: "only", definition: "single", prof: 0})
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	before := st
	st = e.GoPrevious(st)

	if st.Index != before.Index || st.Current != before.Current {
		t.Error("GoPrevious at index 0 must be a no-op")
	}
}

func TestSubmitAnswer_DoesNotMutatePriorState(t *testing.T) {
	list := makeList(testEntry{term: "only", definition: "single", prof: 0})
	e := engineWithRolls(list, 40)

	st := e.PrepareQueue()
	next := e.SubmitAnswer(st, Answer{Text: "only"})

	if st.Current.Scored {
		t.Error("scoring leaked into the prior state value")
	}
	if !next.Current.Scored {
		t.Error("updated state missing scored flag")
	}
}

type recordingPersister struct {
	saved      []uuid.UUID
	savedLists []uuid.UUID
}

func (p *recordingPersister) SaveEntry(e *vocab.WordEntry) error {
	p.saved = append(p.saved, e.ID)
	return nil
}

func (p *recordingPersister) SaveList(l *vocab.WordList) error {
	p.savedLists = append(p.savedLists, l.ID)
	return nil
}

func TestScoring_NotifiesPersister(t *testing.T) {
	list := makeList(testEntry{term: "only", definition: "single", prof: 0})
	p := &recordingPersister{}
	e := NewEngine(list, Config{Rand: &fakeRand{rolls: []int{40}}, Persister: p})

	st := e.PrepareQueue()
	e.SubmitAnswer(st, Answer{Text: "only"})

	if len(p.saved) != 1 || p.saved[0] != list.Entries[0].ID {
		t.Errorf("persister saw %v, want the scored entry exactly once", p.saved)
	}
}

func TestPrepareQueue_PersistsListUsage(t *testing.T) {
	list := makeList(testEntry{term: "only", definition: "single", prof: 0})
	p := &recordingPersister{}
	e := NewEngine(list, Config{Rand: &fakeRand{}, Persister: p})

	before := list.LastUsedAt
	e.PrepareQueue()

	if len(p.savedLists) != 1 || p.savedLists[0] != list.ID {
		t.Errorf("persister saw lists %v, want the session's list exactly once", p.savedLists)
	}
	if !list.LastUsedAt.After(before) {
		t.Error("last-used timestamp did not advance")
	}
}

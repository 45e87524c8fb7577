// Package study builds and runs randomized drill sessions over a word
// list: queue construction from due entries, adaptive question selection,
// distractor sets, and at-most-once scoring per question.
package study

import (
	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/scoring"
	"github.com/tanvi/lexi/internal/vocab"
)

// Persister receives entries after a scoring mutation and the list when
// a session marks it used. Saves are fire-and-forget: the engine never
// blocks on or inspects the result.
type Persister interface {
	SaveEntry(e *vocab.WordEntry) error
	SaveList(l *vocab.WordList) error
}

// Answer carries the learner's response; the field read depends on the
// current question's kind.
type Answer struct {
	// Know answers a recognition question.
	Know bool

	// Text answers a fill-in question.
	Text string

	// Choice answers a multiple-choice question by option index.
	Choice int
}

// Engine runs study sessions for a single list. It owns no session
// state; all of it lives in the State values it returns.
type Engine struct {
	list    *vocab.WordList
	byID    map[uuid.UUID]*vocab.WordEntry
	rng     Rand
	persist Persister
}

// Config carries optional Engine dependencies.
type Config struct {
	// Rand overrides the randomness source. Nil means math/rand/v2.
	Rand Rand

	// Persister receives scored entries. Nil disables persistence.
	Persister Persister
}

// NewEngine creates an engine over the list's entries.
func NewEngine(list *vocab.WordList, cfg Config) *Engine {
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand()
	}
	byID := make(map[uuid.UUID]*vocab.WordEntry, len(list.Entries))
	for i := range list.Entries {
		byID[list.Entries[i].ID] = &list.Entries[i]
	}
	return &Engine{
		list:    list,
		byID:    byID,
		rng:     rng,
		persist: cfg.Persister,
	}
}

// PrepareQueue filters the list to due entries (proficiency below 90),
// shuffles them into a queue, and serves the first question. A list with
// no due entries yields a Complete session immediately; that is a normal
// status, not an error.
func (e *Engine) PrepareQueue() State {
	e.list.MarkUsed()
	if e.persist != nil {
		_ = e.persist.SaveList(e.list)
	}

	st := State{
		SessionID: uuid.New().String(),
		ListID:    e.list.ID,
	}
	for _, entry := range e.list.DueEntries() {
		st.Queue = append(st.Queue, entry.ID)
	}
	e.rng.Shuffle(len(st.Queue), func(i, j int) {
		st.Queue[i], st.Queue[j] = st.Queue[j], st.Queue[i]
	})

	if len(st.Queue) == 0 {
		st.Status = StatusComplete
		return st
	}
	st.Status = StatusActive
	st.Current = e.buildQuestion(st, 0)
	return st
}

// CurrentQuestion returns the question in view, nil when the session is
// not active.
func (e *Engine) CurrentQuestion(st State) *Question {
	if st.Status != StatusActive {
		return nil
	}
	return st.Current
}

// SubmitAnswer scores the current question. Each question instance is
// scored at most once: answering an already-scored question returns the
// state unchanged, with no second delta and no re-stamp. Recognition
// answers auto-advance; fill-in and multiple choice hold position so the
// caller can show correctness feedback before an explicit Advance.
func (e *Engine) SubmitAnswer(st State, ans Answer) State {
	if st.Status != StatusActive || st.Current == nil || st.Current.Scored {
		return st
	}
	entry := e.entry(st.Current.EntryID)
	if entry == nil {
		// Entry vanished under the session; skip the position.
		return e.moveForward(st)
	}

	outcome := e.judge(st.Current, entry, ans)
	st = e.score(st, entry, outcome)

	if st.Current.Kind == KindRecognition {
		return e.moveForward(st)
	}
	return st
}

// Advance moves to the next queue position. An unscored question is
// treated as a skip: scored with a zero delta (stamping the review time)
// before moving on. Past the end of the queue the session completes.
func (e *Engine) Advance(st State) State {
	if st.Status != StatusActive || st.Current == nil {
		return st
	}
	if !st.Current.Scored {
		if entry := e.entry(st.Current.EntryID); entry != nil {
			st = e.score(st, entry, scoring.Skipped)
		}
	}
	return e.moveForward(st)
}

// GoPrevious steps back one queue position and builds a fresh randomized
// question for the word now in view; it never replays the prior question
// instance. No-op at position zero or outside an active session.
func (e *Engine) GoPrevious(st State) State {
	if st.Status != StatusActive || st.Index == 0 {
		return st
	}
	st.Index--
	st.Current = e.buildQuestion(st, st.Index)
	return st
}

// judge maps the raw answer onto a scoring outcome for the question kind.
func (e *Engine) judge(q *Question, entry *vocab.WordEntry, ans Answer) scoring.Outcome {
	switch q.Kind {
	case KindRecognition:
		if ans.Know {
			return scoring.RecognitionKnown
		}
		return scoring.RecognitionUnknown
	case KindFillIn:
		if scoring.MatchFillIn(ans.Text, entry.Term) {
			return scoring.FillInCorrect
		}
		return scoring.FillInIncorrect
	default:
		if ans.Choice == q.CorrectIndex {
			return scoring.ChoiceCorrect
		}
		return scoring.ChoiceIncorrect
	}
}

// score applies the outcome exactly once and flips the question's scored
// flag in an updated state copy.
func (e *Engine) score(st State, entry *vocab.WordEntry, outcome scoring.Outcome) State {
	scoring.Apply(entry, outcome)
	if e.persist != nil {
		_ = e.persist.SaveEntry(entry) // fire-and-forget
	}

	q := *st.Current
	q.Scored = true
	st.Current = &q
	st.LastOutcome = outcome
	st.Answered++
	if scoring.Correct(outcome) {
		st.Correct++
	}
	return st
}

func (e *Engine) moveForward(st State) State {
	st.Index++
	if st.Index >= len(st.Queue) {
		st.Status = StatusComplete
		st.Current = nil
		return st
	}
	st.Current = e.buildQuestion(st, st.Index)
	return st
}

func (e *Engine) entry(id uuid.UUID) *vocab.WordEntry {
	return e.byID[id]
}

package study

import (
	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/scoring"
)

// Status is the session lifecycle position.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusComplete
)

// State is the full session state, threaded through every engine
// operation as a value. Engine methods return an updated copy and never
// mutate their input, so a test can hold any intermediate state and
// replay from it.
type State struct {
	SessionID string
	ListID    uuid.UUID
	Status    Status

	// Queue holds the shuffled due-entry ids for this session.
	Queue []uuid.UUID

	// Index is the current queue position.
	Index int

	// Current is the question in view, nil when Idle or Complete.
	Current *Question

	// LastOutcome is the most recent scoring outcome, for feedback.
	LastOutcome scoring.Outcome

	// Answered and Correct count scored questions for the summary.
	Answered int
	Correct  int
}

// Done reports whether the session has run out of questions.
func (s State) Done() bool {
	return s.Status == StatusComplete
}

// Remaining returns the number of queue positions at or after the
// current index.
func (s State) Remaining() int {
	if s.Status != StatusActive {
		return 0
	}
	return len(s.Queue) - s.Index
}

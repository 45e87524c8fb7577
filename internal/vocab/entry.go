package vocab

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Proficiency bounds. Every write clamps into this range; out-of-range
// input is never an error.
const (
	MinProficiency = 0
	MaxProficiency = 100
)

// DueThreshold is the proficiency below which an entry is eligible for a
// study queue.
const DueThreshold = 90

var (
	// ErrEmptyTerm is returned when a term is empty after trimming.
	ErrEmptyTerm = errors.New("term must not be empty")

	// ErrSelfLink is returned when an entry is linked to itself.
	ErrSelfLink = errors.New("entry cannot be its own lemma or derivative")

	// ErrCrossList is returned when a link targets an entry in another list.
	ErrCrossList = errors.New("lemma and derivative must belong to the same list")
)

// WordEntry is a single vocabulary item owned by a WordList.
//
// LemmaID is the forward half of the lemma/derivative relationship; the
// reverse derivative sets are maintained by the wordgraph package and are
// never written directly.
type WordEntry struct {
	ID             uuid.UUID `gorm:"type:text;primaryKey"`
	ListID         uuid.UUID `gorm:"type:text;not null;index"`
	Term           string    `gorm:"not null"`
	Pronunciation  string
	PartOfSpeech   string
	Definition     string
	Proficiency    int       `gorm:"not null;default:0"`
	ModifiedAt     time.Time `gorm:"not null"`
	LastReviewedAt *time.Time
	LemmaID        *uuid.UUID `gorm:"type:text;index"`
	Lemma          *WordEntry `gorm:"foreignKey:LemmaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (WordEntry) TableName() string { return "word_entries" }

// NewEntry creates an entry for the given list. The term is trimmed and
// must be non-empty.
func NewEntry(listID uuid.UUID, term string) (*WordEntry, error) {
	term, err := ValidateTerm(term)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	return &WordEntry{
		ID:         uuid.New(),
		ListID:     listID,
		Term:       term,
		ModifiedAt: now,
	}, nil
}

// ValidateTerm trims the term and rejects empty results.
func ValidateTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptyTerm
	}
	return term, nil
}

// ValidateLink checks the editor-boundary rules for a lemma/derivative
// link between two entries. The graph primitives assume these hold.
func ValidateLink(entry, target *WordEntry) error {
	if entry.ID == target.ID {
		return ErrSelfLink
	}
	if entry.ListID != target.ListID {
		return ErrCrossList
	}
	return nil
}

// ClampProficiency bounds p into [MinProficiency, MaxProficiency].
func ClampProficiency(p int) int {
	if p < MinProficiency {
		return MinProficiency
	}
	if p > MaxProficiency {
		return MaxProficiency
	}
	return p
}

// Touch stamps ModifiedAt. Called on every field mutation, never on read.
func (e *WordEntry) Touch() {
	e.ModifiedAt = timeNow()
}

// SetProficiency writes a clamped proficiency and stamps ModifiedAt.
func (e *WordEntry) SetProficiency(p int) {
	e.Proficiency = ClampProficiency(p)
	e.Touch()
}

// AddProficiency applies a signed delta, clamping the result.
func (e *WordEntry) AddProficiency(delta int) {
	e.SetProficiency(e.Proficiency + delta)
}

// MarkReviewed stamps LastReviewedAt and ModifiedAt. The at-most-once-per-
// question guarantee is enforced by the study engine, not here.
func (e *WordEntry) MarkReviewed() {
	now := timeNow()
	e.LastReviewedAt = &now
	e.ModifiedAt = now
}

// Due reports whether the entry belongs in a study queue.
func (e *WordEntry) Due() bool {
	return e.Proficiency < DueThreshold
}

// Package scoring maps quiz outcomes to proficiency deltas and applies
// them to entries with clamping.
package scoring

import (
	"strings"

	"github.com/tanvi/lexi/internal/vocab"
)

// Outcome is the result of one answered question.
type Outcome string

const (
	RecognitionKnown   Outcome = "recognition-known"
	RecognitionUnknown Outcome = "recognition-unknown"
	FillInCorrect      Outcome = "fillin-correct"
	FillInIncorrect    Outcome = "fillin-incorrect"
	ChoiceCorrect      Outcome = "choice-correct"
	ChoiceIncorrect    Outcome = "choice-incorrect"
	Skipped            Outcome = "skipped"
)

// Deltas per outcome. Spelling recall is rewarded most, passive
// recognition least.
const (
	recognitionDelta = 5
	fillInDelta      = 30
	choiceDelta      = 15
)

// Delta returns the signed proficiency change for an outcome. Wrong or
// skipped answers never penalize.
func Delta(o Outcome) int {
	switch o {
	case RecognitionKnown:
		return recognitionDelta
	case FillInCorrect:
		return fillInDelta
	case ChoiceCorrect:
		return choiceDelta
	}
	return 0
}

// Correct reports whether the outcome counts as a correct answer.
func Correct(o Outcome) bool {
	return Delta(o) > 0
}

// Apply writes the outcome's delta into the entry, clamped to
// [0,100], and stamps LastReviewedAt/ModifiedAt. Callers must invoke this
// at most once per question attempt; the study engine guards that with a
// per-question scored flag.
func Apply(e *vocab.WordEntry, o Outcome) {
	e.AddProficiency(Delta(o))
	e.MarkReviewed()
}

// MatchFillIn compares a typed spelling against the target term,
// ignoring case, surrounding whitespace, and internal whitespace runs.
func MatchFillIn(input, target string) bool {
	return normalize(input) != "" && normalize(input) == normalize(target)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

package study

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/vocab"
)

// Kind is the question type served for a queue position.
type Kind string

const (
	// KindRecognition is a binary know/don't-know prompt.
	KindRecognition Kind = "recognition"

	// KindFillIn asks the learner to type the term from its definition.
	KindFillIn Kind = "fillin"

	// KindMultipleChoice asks the learner to pick the matching definition
	// (or, rarely, pronunciation) from four options.
	KindMultipleChoice Kind = "choice"
)

// PromptField is the entry field shown as a recognition prompt.
type PromptField string

const (
	FieldTerm          PromptField = "term"
	FieldDefinition    PromptField = "definition"
	FieldPronunciation PromptField = "pronunciation"
)

// Question is one served question instance. A fresh instance is built
// every time a queue position comes into view, so revisiting a word never
// replays the prior question.
type Question struct {
	EntryID uuid.UUID
	Kind    Kind

	// Prompt is the text shown to the learner.
	Prompt string

	// PromptField records which field Prompt came from (recognition only).
	PromptField PromptField

	// Choices and CorrectIndex are populated for multiple choice.
	Choices      []Choice
	CorrectIndex int

	// Scored flips on the first scoring call; a question is never
	// scored twice.
	Scored bool
}

// Choice is one multiple-choice option, tracked back to the entry that
// supplied its text.
type Choice struct {
	EntryID uuid.UUID
	Text    string
}

// Question-type roll boundaries, on a uniform draw in [0,100).
const (
	recognitionBound = 34
	fillInBound      = 67
)

// choiceDefinitionBias is the percent chance a multiple-choice question
// targets the definition rather than the pronunciation.
const choiceDefinitionBias = 95

const maxDistractors = 3

// buildQuestion constructs a randomized question for the entry at queue
// position index. Entries later in the queue are preferred as distractor
// sources to reduce repetition bias; the rest of the list tops up the
// pool when the queue tail runs short.
func (e *Engine) buildQuestion(st State, index int) *Question {
	entry := e.entry(st.Queue[index])
	if entry == nil {
		return nil
	}

	roll := e.rng.IntN(100)
	switch {
	case roll < recognitionBound:
		return e.buildRecognition(entry)
	case roll < fillInBound:
		if hasText(entry.Definition) {
			return buildFillIn(entry)
		}
		// Nothing to prompt spelling from; fall back to recognition.
		return e.buildRecognition(entry)
	default:
		if q := e.buildMultipleChoice(st, index, entry); q != nil {
			return q
		}
		return e.buildRecognition(entry)
	}
}

// buildRecognition picks uniformly among the prompt fields the entry
// actually has: the term is always available, definition and
// pronunciation only when non-empty.
func (e *Engine) buildRecognition(entry *vocab.WordEntry) *Question {
	fields := []PromptField{FieldTerm}
	if hasText(entry.Definition) {
		fields = append(fields, FieldDefinition)
	}
	if hasText(entry.Pronunciation) {
		fields = append(fields, FieldPronunciation)
	}

	field := fields[e.rng.IntN(len(fields))]
	prompt := entry.Term
	switch field {
	case FieldDefinition:
		prompt = entry.Definition
	case FieldPronunciation:
		prompt = entry.Pronunciation
	}

	return &Question{
		EntryID:     entry.ID,
		Kind:        KindRecognition,
		Prompt:      prompt,
		PromptField: field,
	}
}

func buildFillIn(entry *vocab.WordEntry) *Question {
	return &Question{
		EntryID:     entry.ID,
		Kind:        KindFillIn,
		Prompt:      entry.Definition,
		PromptField: FieldDefinition,
	}
}

// buildMultipleChoice targets the definition with high probability, the
// pronunciation otherwise. Returns nil when the entry lacks text for
// either target, in which case the caller degrades to recognition.
func (e *Engine) buildMultipleChoice(st State, index int, entry *vocab.WordEntry) *Question {
	field := FieldDefinition
	if e.rng.IntN(100) >= choiceDefinitionBias {
		field = FieldPronunciation
	}
	if !hasText(fieldText(entry, field)) {
		// Try the other target before giving up.
		if field == FieldDefinition {
			field = FieldPronunciation
		} else {
			field = FieldDefinition
		}
		if !hasText(fieldText(entry, field)) {
			return nil
		}
	}

	distractors := e.pickDistractors(st, index, entry, field)
	if len(distractors) == 0 {
		return nil
	}

	choices := make([]Choice, 0, len(distractors)+1)
	for _, d := range distractors {
		choices = append(choices, Choice{EntryID: d.ID, Text: fieldText(d, field)})
	}
	choices = append(choices, Choice{EntryID: entry.ID, Text: fieldText(entry, field)})
	e.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correct := 0
	for i, c := range choices {
		if c.EntryID == entry.ID {
			correct = i
			break
		}
	}

	return &Question{
		EntryID:      entry.ID,
		Kind:         KindMultipleChoice,
		Prompt:       entry.Term,
		PromptField:  field,
		Choices:      choices,
		CorrectIndex: correct,
	}
}

// pickDistractors draws up to three distinct distractor entries. The
// preferred pool is queue positions after index; when fewer than three
// qualify, the remainder of the list tops the pool up.
func (e *Engine) pickDistractors(st State, index int, answer *vocab.WordEntry, field PromptField) []*vocab.WordEntry {
	seen := map[uuid.UUID]struct{}{answer.ID: {}}
	var pool []*vocab.WordEntry

	add := func(cand *vocab.WordEntry) {
		if cand == nil {
			return
		}
		if _, dup := seen[cand.ID]; dup {
			return
		}
		text := fieldText(cand, field)
		if !hasText(text) || scoringEqual(text, fieldText(answer, field)) {
			return
		}
		seen[cand.ID] = struct{}{}
		pool = append(pool, cand)
	}

	for i := index + 1; i < len(st.Queue); i++ {
		add(e.entry(st.Queue[i]))
	}
	if len(pool) < maxDistractors {
		for i := range e.list.Entries {
			add(&e.list.Entries[i])
		}
	}

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > maxDistractors {
		pool = pool[:maxDistractors]
	}
	return pool
}

func fieldText(e *vocab.WordEntry, f PromptField) string {
	switch f {
	case FieldDefinition:
		return e.Definition
	case FieldPronunciation:
		return e.Pronunciation
	}
	return e.Term
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func scoringEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

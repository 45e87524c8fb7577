// Package suggest fills in word entry details with an LLM: definition,
// pronunciation, part of speech, an example sentence, and the base form
// when the word is a derivative.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tanvi/lexi/internal/llm"
)

// Card is a suggested description of a single word.
type Card struct {
	Term          string
	Pronunciation string
	PartOfSpeech  string
	Definition    string
	Example       string

	// Lemma is the suggested base form, empty when the term itself is
	// the base form (or when none applies).
	Lemma string
}

// Config controls the behavior of the Suggester.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Suggester produces word cards using the LLM provider.
type Suggester struct {
	provider llm.Provider
	config   Config
}

// New creates a Suggester with the given provider and config.
func New(provider llm.Provider, cfg Config) *Suggester {
	return &Suggester{provider: provider, config: cfg}
}

// cardOutput is the raw LLM response before validation.
type cardOutput struct {
	Pronunciation string `json:"pronunciation"`
	PartOfSpeech  string `json:"part_of_speech"`
	Definition    string `json:"definition"`
	Example       string `json:"example"`
	Lemma         string `json:"lemma"`
}

// Suggest produces a card for the given term. Known terms from the same
// list may be passed as context so the lemma suggestion can point at an
// existing entry.
func (s *Suggester) Suggest(ctx context.Context, term string, knownTerms []string) (*Card, error) {
	ctx = llm.WithPurpose(ctx, "word-suggest")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserPrompt(term, knownTerms),
		Schema:      CardSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw cardOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	card := &Card{
		Term:          term,
		Pronunciation: strings.TrimSpace(raw.Pronunciation),
		PartOfSpeech:  strings.TrimSpace(raw.PartOfSpeech),
		Definition:    strings.TrimSpace(raw.Definition),
		Example:       strings.TrimSpace(raw.Example),
		Lemma:         strings.TrimSpace(raw.Lemma),
	}

	if err := checkCard(card); err != nil {
		return nil, err
	}

	return card, nil
}

package suggest

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tanvi/lexi/internal/llm"
)

func cardJSON(t *testing.T, c cardOutput) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestSuggest_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: cardJSON(t, cardOutput{
			Pronunciation: "/ˌluːmɪˈnɒsɪti/",
			PartOfSpeech:  "noun",
			Definition:    "the intrinsic brightness of an object",
			Example:       "Astronomers measure a star's luminosity.",
			Lemma:         "luminous",
		}),
	})
	s := New(mock, DefaultConfig())

	card, err := s.Suggest(context.Background(), "luminosity", []string{"luminous", "taciturn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Term != "luminosity" {
		t.Errorf("Term = %q, want luminosity", card.Term)
	}
	if card.Lemma != "luminous" {
		t.Errorf("Lemma = %q, want luminous", card.Lemma)
	}
	if card.PartOfSpeech != "noun" {
		t.Errorf("PartOfSpeech = %q, want noun", card.PartOfSpeech)
	}
}

func TestSuggest_PromptCarriesTermAndKnownWords(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: cardJSON(t, cardOutput{
			Pronunciation: "/x/",
			PartOfSpeech:  "noun",
			Definition:    "d",
			Example:       "e",
		}),
	})
	s := New(mock, DefaultConfig())

	_, err := s.Suggest(context.Background(), "ephemeral", []string{"luminous"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Prompt, "Word: ephemeral") {
		t.Errorf("prompt missing the term:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "luminous") {
		t.Errorf("prompt missing known words:\n%s", req.Prompt)
	}
	if req.Schema == nil || req.Schema.Name != "word-card" {
		t.Error("request must carry the word-card schema")
	}
}

func TestSuggest_EmptyDefinitionRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: cardJSON(t, cardOutput{
			Pronunciation: "/x/",
			PartOfSpeech:  "noun",
			Definition:    "   ",
			Example:       "e",
		}),
	})
	s := New(mock, DefaultConfig())

	_, err := s.Suggest(context.Background(), "word", nil)
	if err == nil {
		t.Fatal("expected error for empty definition")
	}
}

func TestSuggest_SelfLemmaCleared(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: cardJSON(t, cardOutput{
			Pronunciation: "/x/",
			PartOfSpeech:  "verb",
			Definition:    "to move fast",
			Example:       "Run home.",
			Lemma:         "run",
		}),
	})
	s := New(mock, DefaultConfig())

	card, err := s.Suggest(context.Background(), "run", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Lemma != "" {
		t.Errorf("Lemma = %q, want empty for a self-referential suggestion", card.Lemma)
	}
}

func TestSuggest_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → unavailable
	s := New(mock, DefaultConfig())

	_, err := s.Suggest(context.Background(), "word", nil)
	if err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestBuildUserPrompt_CapsKnownTerms(t *testing.T) {
	terms := make([]string, 80)
	for i := range terms {
		terms[i] = "w"
	}
	p := buildUserPrompt("word", terms)
	if got := strings.Count(p, "w,"); got > maxKnownTerms {
		t.Errorf("prompt lists %d terms, cap is %d", got, maxKnownTerms)
	}
}

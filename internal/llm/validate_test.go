package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// cardSchema mirrors the shape the suggester asks for: a card with a
// required definition, an optional constrained part of speech, and a
// usage example.
func cardSchema() *Schema {
	return &Schema{
		Name:        "card-fixture",
		Description: "A dictionary-style card for one word",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"definition": map[string]any{"type": "string"},
				"part_of_speech": map[string]any{
					"type": "string",
					"enum": []any{"noun", "verb", "adjective", "adverb"},
				},
				"example":   map[string]any{"type": "string"},
				"syllables": map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"definition", "syllables"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			"complete card",
			`{"definition":"reluctant to speak","part_of_speech":"adjective","example":"a taciturn host","syllables":3}`,
			false,
		},
		{
			"optional fields omitted",
			`{"definition":"lasting a very short time","syllables":4}`,
			false,
		},
		{
			"missing required definition",
			`{"part_of_speech":"noun","syllables":2}`,
			true,
		},
		{
			"wrong field type",
			`{"definition":"full of light","syllables":"three"}`,
			true,
		},
		{
			"part of speech outside the enum",
			`{"definition":"full of light","part_of_speech":"gerund","syllables":3}`,
			true,
		},
		{"malformed json", `{not json}`, true},
		{"empty body", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(cardSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema must accept any payload, got: %v", err)
	}
}

func TestValidateResponse_NestedDefinition(t *testing.T) {
	schema := &Schema{
		Name: "senses-fixture",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{"type": "string"},
					},
					"required": []any{"term"},
				},
				"senses": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"word", "senses"},
		},
	}

	valid := json.RawMessage(`{"word":{"term":"bank"},"senses":["river edge","money house"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"word":{"term":"bank"},"senses":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

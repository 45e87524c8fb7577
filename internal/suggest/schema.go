package suggest

import "github.com/tanvi/lexi/internal/llm"

// CardSchema defines the JSON schema for LLM word card responses.
var CardSchema = &llm.Schema{
	Name:        "word-card",
	Description: "A dictionary-style description of a single word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pronunciation": map[string]any{
				"type":        "string",
				"description": "IPA pronunciation wrapped in slashes, e.g. /ɪˈfɛmərəl/",
			},
			"part_of_speech": map[string]any{
				"type":        "string",
				"enum":        []any{"noun", "verb", "adjective", "adverb", "pronoun", "preposition", "conjunction", "interjection", "phrase"},
				"description": "The most common part of speech for this word",
			},
			"definition": map[string]any{
				"type":        "string",
				"description": "A concise learner-friendly definition, one sentence",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A short example sentence using the word naturally",
			},
			"lemma": map[string]any{
				"type":        "string",
				"description": "The base form this word derives from, or empty if the word is itself the base form. Prefer a term from the known-words list when one fits.",
			},
		},
		"required":             []any{"pronunciation", "part_of_speech", "definition", "example", "lemma"},
		"additionalProperties": false,
	},
}

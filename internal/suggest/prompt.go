package suggest

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a lexicographer writing entries for a personal vocabulary notebook.

Rules:
- Describe the single given word. Do not describe any other word.
- The definition must be concise, accurate, and easy to memorize: one sentence, no circular wording.
- The pronunciation must be IPA, wrapped in slashes.
- The example sentence must use the word naturally and show its meaning in context.
- If the word is a derivative (e.g. "luminosity"), set "lemma" to its base form (e.g. "luminous"). If the word is itself a base form, set "lemma" to an empty string.
- When a known word from the list fits as the lemma, use exactly that spelling.`

// maxKnownTerms bounds the prompt size for very large lists.
const maxKnownTerms = 50

// buildUserPrompt constructs the user prompt for a term, with the
// caller's known terms as lemma-matching context.
func buildUserPrompt(term string, knownTerms []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word: %s\n", term)

	b.WriteString("\nKnown words in this list:\n")
	if len(knownTerms) == 0 {
		b.WriteString("None")
	} else {
		if len(knownTerms) > maxKnownTerms {
			knownTerms = knownTerms[:maxKnownTerms]
		}
		b.WriteString(strings.Join(knownTerms, ", "))
	}

	return b.String()
}

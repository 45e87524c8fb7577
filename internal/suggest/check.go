package suggest

import "fmt"

// checkCard rejects structurally unusable cards before they reach the
// editor. Schema validation already enforced types and enums; this
// catches semantically empty output.
func checkCard(c *Card) error {
	if c.Definition == "" {
		return fmt.Errorf("suggestion for %q has an empty definition", c.Term)
	}
	if c.Lemma == c.Term {
		// A word is never its own lemma in our model; the link stays unset.
		c.Lemma = ""
	}
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tanvi/lexi/internal/llm"
	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/suggest"
	"github.com/tanvi/lexi/internal/vocab"
	"github.com/tanvi/lexi/internal/wordgraph"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Manage words",
}

var wordAddCmd = &cobra.Command{
	Use:   "add <term>",
	Short: "Add a word to a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := targetList(cmd, st)
		if err != nil {
			return err
		}

		entry, err := vocab.NewEntry(list.ID, args[0])
		if err != nil {
			return err
		}
		entry.Pronunciation, _ = cmd.Flags().GetString("pron")
		entry.PartOfSpeech, _ = cmd.Flags().GetString("pos")
		entry.Definition, _ = cmd.Flags().GetString("def")

		if ai, _ := cmd.Flags().GetBool("ai"); ai && entry.Definition == "" {
			if err := fillFromSuggestion(cmd, list, entry); err != nil {
				fmt.Printf("Suggestion unavailable: %v\n", err)
			}
		}

		if err := st.Entries().Create(cmd.Context(), entry); err != nil {
			return err
		}
		list.Touch()
		if err := st.Lists().Save(cmd.Context(), list); err != nil {
			return err
		}
		fmt.Printf("Added %q to %q\n", entry.Term, list.Name)
		return nil
	},
}

var wordLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show words in a list",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := targetList(cmd, st)
		if err != nil {
			return err
		}
		if len(list.Entries) == 0 {
			fmt.Printf("No words in %q yet.\n", list.Name)
			return nil
		}

		sortFlag, _ := cmd.Flags().GetString("sort")
		key, err := vocab.ParseSortKey(sortFlag)
		if err != nil {
			return err
		}

		ptrs := make([]*vocab.WordEntry, 0, len(list.Entries))
		for i := range list.Entries {
			ptrs = append(ptrs, &list.Entries[i])
		}
		graph := wordgraph.New(list)

		fmt.Printf("%-20s  %-5s  %-12s  %s\n", "Term", "Prof", "Part", "Definition")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range vocab.Sorted(ptrs, key) {
			term := e.Term
			if lemma := graph.Lemma(e); lemma != nil {
				term += " ← " + lemma.Term
			}
			def := truncate(e.Definition, 40)
			fmt.Printf("%-20s  %-5d  %-12s  %s\n", term, e.Proficiency, e.PartOfSpeech, def)
		}
		return nil
	},
}

var wordEditCmd = &cobra.Command{
	Use:   "edit <term>",
	Short: "Edit a word's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, entry, err := targetEntry(cmd, st, args[0])
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("term") {
			term, _ := cmd.Flags().GetString("term")
			term, err := vocab.ValidateTerm(term)
			if err != nil {
				return err
			}
			entry.Term = term
			changed = true
		}
		if cmd.Flags().Changed("pron") {
			entry.Pronunciation, _ = cmd.Flags().GetString("pron")
			changed = true
		}
		if cmd.Flags().Changed("pos") {
			entry.PartOfSpeech, _ = cmd.Flags().GetString("pos")
			changed = true
		}
		if cmd.Flags().Changed("def") {
			entry.Definition, _ = cmd.Flags().GetString("def")
			changed = true
		}
		if cmd.Flags().Changed("prof") {
			p, _ := cmd.Flags().GetInt("prof")
			entry.SetProficiency(p)
			changed = true
		}

		if !changed {
			fmt.Println("Nothing to change. Pass --term, --pron, --pos, --def, or --prof.")
			return nil
		}

		entry.Touch()
		if err := st.Entries().Save(cmd.Context(), entry); err != nil {
			return err
		}
		fmt.Printf("Updated %q\n", entry.Term)
		return nil
	},
}

var wordRmCmd = &cobra.Command{
	Use:   "rm <term>",
	Short: "Delete a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, entry, err := targetEntry(cmd, st, args[0])
		if err != nil {
			return err
		}
		if err := st.Entries().Delete(cmd.Context(), entry.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %q\n", entry.Term)
		return nil
	},
}

var wordLemmaCmd = &cobra.Command{
	Use:   "lemma <term> [lemma-term]",
	Short: "Set or clear a word's lemma",
	Long:  "Link a word to its base form in the same list. With no lemma argument, the link is cleared.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, entry, err := targetEntry(cmd, st, args[0])
		if err != nil {
			return err
		}
		graph := wordgraph.New(list)

		if len(args) == 1 {
			graph.SetLemma(entry, nil)
			if err := st.Entries().Save(cmd.Context(), entry); err != nil {
				return err
			}
			fmt.Printf("Cleared lemma of %q\n", entry.Term)
			return nil
		}

		lemma := findEntry(list, args[1])
		if lemma == nil {
			return fmt.Errorf("no word %q in list %q", args[1], list.Name)
		}
		if err := vocab.ValidateLink(entry, lemma); err != nil {
			return err
		}

		graph.SetLemma(entry, lemma)
		if err := st.Entries().Save(cmd.Context(), entry); err != nil {
			return err
		}
		fmt.Printf("%q is now a derivative of %q\n", entry.Term, lemma.Term)
		return nil
	},
}

var wordDerivativesCmd = &cobra.Command{
	Use:   "derivatives <term> [derivative-term...]",
	Short: "Show or set a word's derivatives",
	Long: "With no extra arguments, prints the word's derivatives. With arguments, " +
		"makes exactly those words the derivative set: missing links are added and " +
		"stale ones cleared.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, entry, err := targetEntry(cmd, st, args[0])
		if err != nil {
			return err
		}
		graph := wordgraph.New(list)

		if len(args) == 1 {
			derivs := graph.Derivatives(entry.ID)
			if len(derivs) == 0 {
				fmt.Printf("%q has no derivatives.\n", entry.Term)
				return nil
			}
			for _, d := range derivs {
				fmt.Println(d.Term)
			}
			return nil
		}

		desired := make([]uuid.UUID, 0, len(args)-1)
		touched := []*vocab.WordEntry{}
		for _, name := range args[1:] {
			d := findEntry(list, name)
			if d == nil {
				return fmt.Errorf("no word %q in list %q", name, list.Name)
			}
			if err := vocab.ValidateLink(d, entry); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			desired = append(desired, d.ID)
			touched = append(touched, d)
		}

		// Save every entry whose lemma pointer may have moved: the prior
		// derivatives and the new set.
		prior := graph.Derivatives(entry.ID)
		graph.ApplyDesiredDerivatives(entry, desired)
		touched = append(touched, prior...)

		if err := st.Entries().SaveAll(cmd.Context(), touched); err != nil {
			return err
		}
		fmt.Printf("%q now has %d derivatives\n", entry.Term, len(desired))
		return nil
	},
}

var wordSuggestCmd = &cobra.Command{
	Use:   "suggest <term>",
	Short: "Ask the configured LLM for a word card",
	Long:  "Prints an AI-suggested pronunciation, part of speech, definition, and example for the term. Nothing is saved.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := targetList(cmd, st)
		if err != nil {
			return err
		}

		card, err := suggestCard(cmd, list, args[0])
		if err != nil {
			return err
		}

		fmt.Println(card.Term)
		if card.Pronunciation != "" {
			fmt.Println(" ", card.Pronunciation)
		}
		if card.PartOfSpeech != "" {
			fmt.Println(" ", card.PartOfSpeech)
		}
		fmt.Println(" ", card.Definition)
		if card.Example != "" {
			fmt.Printf("  %q\n", card.Example)
		}
		if card.Lemma != "" {
			fmt.Println("  lemma:", card.Lemma)
		}
		return nil
	},
}

// targetList resolves the --list flag, defaulting to the most recently
// used list.
func targetList(cmd *cobra.Command, st *store.Store) (*vocab.WordList, error) {
	if name, _ := cmd.Flags().GetString("list"); name != "" {
		return loadList(cmd, st, name)
	}
	return mostRecentList(cmd, st)
}

// targetEntry resolves a term within the target list.
func targetEntry(cmd *cobra.Command, st *store.Store, term string) (*vocab.WordList, *vocab.WordEntry, error) {
	list, err := targetList(cmd, st)
	if err != nil {
		return nil, nil, err
	}
	entry := findEntry(list, term)
	if entry == nil {
		return nil, nil, fmt.Errorf("no word %q in list %q", term, list.Name)
	}
	return list, entry, nil
}

// findEntry matches a term case-insensitively within the list.
func findEntry(list *vocab.WordList, term string) *vocab.WordEntry {
	term = strings.TrimSpace(term)
	for i := range list.Entries {
		if strings.EqualFold(list.Entries[i].Term, term) {
			return &list.Entries[i]
		}
	}
	return nil
}

// truncate shortens s to at most max runes, appending an ellipsis when
// it cuts. Counting runes keeps multi-byte definitions intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// suggestCard runs one LLM suggestion for the term against the list's
// known words.
func suggestCard(cmd *cobra.Command, list *vocab.WordList, term string) (*suggest.Card, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), newLogger(cmd))
	if err != nil {
		return nil, err
	}

	known := make([]string, 0, len(list.Entries))
	for i := range list.Entries {
		known = append(known, list.Entries[i].Term)
	}

	suggester := suggest.New(provider, suggest.DefaultConfig())
	return suggester.Suggest(cmd.Context(), term, known)
}

// fillFromSuggestion copies suggested fields onto a new entry, leaving
// any field the user already set alone.
func fillFromSuggestion(cmd *cobra.Command, list *vocab.WordList, entry *vocab.WordEntry) error {
	card, err := suggestCard(cmd, list, entry.Term)
	if err != nil {
		return err
	}
	if entry.Pronunciation == "" {
		entry.Pronunciation = card.Pronunciation
	}
	if entry.PartOfSpeech == "" {
		entry.PartOfSpeech = card.PartOfSpeech
	}
	if entry.Definition == "" {
		entry.Definition = card.Definition
	}
	if card.Lemma != "" && entry.LemmaID == nil {
		// Link only when the suggested base form is already in the list.
		if lemma := findEntry(list, card.Lemma); lemma != nil && lemma.ID != entry.ID {
			id := lemma.ID
			entry.LemmaID = &id
		}
	}
	return nil
}

func init() {
	wordCmd.PersistentFlags().String("list", "", "Target list (defaults to the most recently used)")

	wordAddCmd.Flags().String("pron", "", "Pronunciation")
	wordAddCmd.Flags().String("pos", "", "Part of speech")
	wordAddCmd.Flags().String("def", "", "Definition")
	wordAddCmd.Flags().Bool("ai", false, "Fill missing fields from the configured LLM")

	wordLsCmd.Flags().String("sort", "alpha", "Sort key: alpha, prof, modified, reviewed")

	wordEditCmd.Flags().String("term", "", "New term")
	wordEditCmd.Flags().String("pron", "", "New pronunciation")
	wordEditCmd.Flags().String("pos", "", "New part of speech")
	wordEditCmd.Flags().String("def", "", "New definition")
	wordEditCmd.Flags().Int("prof", 0, "New proficiency (0-100)")

	wordCmd.AddCommand(wordAddCmd)
	wordCmd.AddCommand(wordLsCmd)
	wordCmd.AddCommand(wordEditCmd)
	wordCmd.AddCommand(wordRmCmd)
	wordCmd.AddCommand(wordLemmaCmd)
	wordCmd.AddCommand(wordDerivativesCmd)
	wordCmd.AddCommand(wordSuggestCmd)
}

package store

import (
	"context"
	"fmt"

	"github.com/tanvi/lexi/internal/vocab"
)

// Bootstrap seeds a starter list on first run so the study screen has
// something to show. No-op when any list already exists.
func (s *Store) Bootstrap(ctx context.Context) error {
	n, err := s.Lists().Count(ctx)
	if err != nil {
		return fmt.Errorf("count lists: %w", err)
	}
	if n > 0 {
		return nil
	}

	list, err := vocab.NewList("Starter Words")
	if err != nil {
		return fmt.Errorf("seed starter list: %w", err)
	}

	luminous := seedEntry(list, "luminous", "/ˈluːmɪnəs/", "adjective",
		"giving off light; bright or shining")
	luminosity := seedEntry(list, "luminosity", "/ˌluːmɪˈnɒsɪti/", "noun",
		"the intrinsic brightness of an object")
	lemmaID := luminous.ID
	luminosity.LemmaID = &lemmaID
	taciturn := seedEntry(list, "taciturn", "/ˈtæsɪtɜːn/", "adjective",
		"reserved or uncommunicative in speech")
	ephemeral := seedEntry(list, "ephemeral", "/ɪˈfɛmərəl/", "adjective",
		"lasting for a very short time")

	list.Entries = []vocab.WordEntry{*luminous, *luminosity, *taciturn, *ephemeral}

	if err := s.Lists().Create(ctx, list); err != nil {
		return fmt.Errorf("seed starter list: %w", err)
	}
	return nil
}

// seedEntry builds a curated entry. Terms are known-valid literals.
func seedEntry(list *vocab.WordList, term, pron, pos, def string) *vocab.WordEntry {
	e, _ := vocab.NewEntry(list.ID, term)
	e.Pronunciation = pron
	e.PartOfSpeech = pos
	e.Definition = def
	return e
}

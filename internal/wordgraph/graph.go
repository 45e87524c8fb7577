package wordgraph

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tanvi/lexi/internal/vocab"
)

// Graph maintains the symmetric lemma↔derivative relationship between the
// entries of one word list. The forward pointer lives on the entry
// (LemmaID); the reverse derivative sets live only here. Both sides are
// mutated exclusively through the operations below so the symmetry
// invariant (A in B's derivatives iff A's lemma is B) always holds.
type Graph struct {
	entries     map[uuid.UUID]*vocab.WordEntry
	derivatives map[uuid.UUID]map[uuid.UUID]struct{}
}

// New builds a graph over the list's entries. Lemma pointers that
// reference an id no longer present in the list are skipped, not errors.
func New(list *vocab.WordList) *Graph {
	g := &Graph{
		entries:     make(map[uuid.UUID]*vocab.WordEntry, len(list.Entries)),
		derivatives: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
	for i := range list.Entries {
		e := &list.Entries[i]
		g.entries[e.ID] = e
	}
	for _, e := range g.entries {
		if e.LemmaID == nil {
			continue
		}
		if _, ok := g.entries[*e.LemmaID]; !ok {
			continue // dangling reference
		}
		g.addReverse(*e.LemmaID, e.ID)
	}
	return g
}

// SetLemma points entry at a new lemma (or detaches it when lemma is nil).
// The entry is removed from its previous lemma's derivative set, and the
// insert into the new set is idempotent. Re-setting the current value does
// not stamp ModifiedAt.
func (g *Graph) SetLemma(entry, lemma *vocab.WordEntry) {
	if entry.LemmaID != nil {
		if lemma != nil && *entry.LemmaID == lemma.ID {
			g.addReverse(lemma.ID, entry.ID)
			return
		}
		g.removeReverse(*entry.LemmaID, entry.ID)
	} else if lemma == nil {
		return
	}

	if lemma == nil {
		entry.LemmaID = nil
	} else {
		id := lemma.ID
		entry.LemmaID = &id
		g.addReverse(lemma.ID, entry.ID)
	}
	entry.Touch()
}

// AddDerivative inserts candidate into entry's derivative set, forcing
// candidate's lemma to entry and implicitly dropping the candidate from
// any former lemma's set.
func (g *Graph) AddDerivative(entry, candidate *vocab.WordEntry) {
	g.SetLemma(candidate, entry)
}

// ApplyDesiredDerivatives reconciles entry's derivative set against a
// target set of ids. Current derivatives missing from the target are
// detached (lemma cleared, not deleted); target ids are attached. Ids not
// present in the list are skipped. Repeated calls with the same target
// converge to the same graph state.
func (g *Graph) ApplyDesiredDerivatives(entry *vocab.WordEntry, desired []uuid.UUID) {
	want := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}

	for _, current := range g.Derivatives(entry.ID) {
		if _, keep := want[current.ID]; !keep {
			g.SetLemma(current, nil)
		}
	}

	for _, id := range desired {
		candidate, ok := g.entries[id]
		if !ok {
			continue // dangling reference
		}
		g.AddDerivative(entry, candidate)
	}
}

// Lemma returns the entry's lemma, or nil when unset or dangling.
func (g *Graph) Lemma(entry *vocab.WordEntry) *vocab.WordEntry {
	if entry.LemmaID == nil {
		return nil
	}
	return g.entries[*entry.LemmaID]
}

// Derivatives returns the entries whose lemma is id, ordered by term
// (case-insensitive) for stable display.
func (g *Graph) Derivatives(id uuid.UUID) []*vocab.WordEntry {
	set := g.derivatives[id]
	if len(set) == 0 {
		return nil
	}
	out := make([]*vocab.WordEntry, 0, len(set))
	for did := range set {
		if e, ok := g.entries[did]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Term), strings.ToLower(out[j].Term)
		if a != b {
			return a < b
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (g *Graph) addReverse(lemmaID, derivativeID uuid.UUID) {
	set, ok := g.derivatives[lemmaID]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		g.derivatives[lemmaID] = set
	}
	set[derivativeID] = struct{}{}
}

func (g *Graph) removeReverse(lemmaID, derivativeID uuid.UUID) {
	if set, ok := g.derivatives[lemmaID]; ok {
		delete(set, derivativeID)
		if len(set) == 0 {
			delete(g.derivatives, lemmaID)
		}
	}
}

package vocab

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortKey selects the ordering for a list view.
type SortKey string

const (
	SortAlphabetical SortKey = "alpha"    // case-insensitive term, ascending
	SortProficiency  SortKey = "prof"     // proficiency descending
	SortModified     SortKey = "modified" // most recently modified first
	SortReviewed     SortKey = "reviewed" // most recently reviewed first, never-reviewed last
)

// ParseSortKey maps a CLI flag value to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortAlphabetical, SortProficiency, SortModified, SortReviewed:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (want alpha, prof, modified, or reviewed)", s)
}

// Sorted returns a new slice of the entries ordered by the given key.
// The sort is stable, so ties (including never-reviewed entries under
// SortReviewed) keep their original relative order.
func Sorted(entries []*WordEntry, key SortKey) []*WordEntry {
	out := make([]*WordEntry, len(entries))
	copy(out, entries)

	switch key {
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Term) < strings.ToLower(out[j].Term)
		})
	case SortProficiency:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Proficiency > out[j].Proficiency
		})
	case SortModified:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ModifiedAt.After(out[j].ModifiedAt)
		})
	case SortReviewed:
		sort.SliceStable(out, func(i, j int) bool {
			return reviewedAt(out[i]).After(reviewedAt(out[j]))
		})
	}
	return out
}

// reviewedAt maps a never-reviewed entry to the zero time so it sorts
// after every reviewed entry under descending order.
func reviewedAt(e *WordEntry) time.Time {
	if e.LastReviewedAt == nil {
		return time.Time{}
	}
	return *e.LastReviewedAt
}

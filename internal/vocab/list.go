package vocab

import (
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is stamped on new lists and bumped on breaking model changes.
const SchemaVersion = 1

// WordList is a named collection of word entries. A list exclusively owns
// its entries; deleting the list cascades to them.
type WordList struct {
	ID            uuid.UUID `gorm:"type:text;primaryKey"`
	Name          string    `gorm:"not null;uniqueIndex"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
	LastUsedAt    time.Time `gorm:"not null"`
	SchemaVersion int       `gorm:"not null;default:1"`

	Entries []WordEntry `gorm:"foreignKey:ListID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (WordList) TableName() string { return "word_lists" }

// NewList creates a list with LastUsedAt == CreatedAt, satisfying the
// lastUsedAt >= createdAt invariant from the start.
func NewList(name string) (*WordList, error) {
	name, err := ValidateTerm(name)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	return &WordList{
		ID:            uuid.New(),
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
		LastUsedAt:    now,
		SchemaVersion: SchemaVersion,
	}, nil
}

// Touch stamps UpdatedAt, keeping it monotonically non-decreasing even if
// the wall clock steps backwards.
func (l *WordList) Touch() {
	now := timeNow()
	if now.After(l.UpdatedAt) {
		l.UpdatedAt = now
	}
}

// MarkUsed records a study session start against the list.
func (l *WordList) MarkUsed() {
	now := timeNow()
	if now.After(l.LastUsedAt) {
		l.LastUsedAt = now
	}
	l.Touch()
}

// DueEntries returns pointers to the entries eligible for a study queue,
// in stored order.
func (l *WordList) DueEntries() []*WordEntry {
	var due []*WordEntry
	for i := range l.Entries {
		if l.Entries[i].Due() {
			due = append(due, &l.Entries[i])
		}
	}
	return due
}

// EntryByID looks up an owned entry. Returns nil if the id is not present,
// which callers treat as a dangling reference and skip.
func (l *WordList) EntryByID(id uuid.UUID) *WordEntry {
	for i := range l.Entries {
		if l.Entries[i].ID == id {
			return &l.Entries[i]
		}
	}
	return nil
}

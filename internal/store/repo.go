package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tanvi/lexi/internal/vocab"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ListRepo provides access to word lists. ByID and ByName preload the
// owned entries so callers can hand the list straight to the study
// engine or the relationship graph.
type ListRepo interface {
	Create(ctx context.Context, list *vocab.WordList) error
	Save(ctx context.Context, list *vocab.WordList) error

	// Delete removes the list and cascades to its entries.
	Delete(ctx context.Context, id uuid.UUID) error

	ByID(ctx context.Context, id uuid.UUID) (*vocab.WordList, error)
	ByName(ctx context.Context, name string) (*vocab.WordList, error)

	// All returns every list without entries, most recently used first.
	All(ctx context.Context) ([]vocab.WordList, error)

	Count(ctx context.Context) (int64, error)
}

// EntryRepo provides access to word entries.
type EntryRepo interface {
	Create(ctx context.Context, entry *vocab.WordEntry) error
	Save(ctx context.Context, entry *vocab.WordEntry) error
	SaveAll(ctx context.Context, entries []*vocab.WordEntry) error
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)

	// DueCount counts entries below the review threshold, across all lists.
	DueCount(ctx context.Context) (int64, error)
}

type listRepo struct {
	db *gorm.DB
}

func (r *listRepo) Create(ctx context.Context, list *vocab.WordList) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	return nil
}

func (r *listRepo) Save(ctx context.Context, list *vocab.WordList) error {
	if err := r.db.WithContext(ctx).Save(list).Error; err != nil {
		return fmt.Errorf("save list: %w", err)
	}
	return nil
}

func (r *listRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Cascade explicitly as well; older databases may predate the
		// foreign key constraint.
		if err := tx.Where("list_id = ?", id).Delete(&vocab.WordEntry{}).Error; err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}
		if err := tx.Delete(&vocab.WordList{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
}

func (r *listRepo) ByID(ctx context.Context, id uuid.UUID) (*vocab.WordList, error) {
	var list vocab.WordList
	err := r.db.WithContext(ctx).Preload("Entries").First(&list, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &list, nil
}

func (r *listRepo) ByName(ctx context.Context, name string) (*vocab.WordList, error) {
	var list vocab.WordList
	err := r.db.WithContext(ctx).Preload("Entries").First(&list, "name = ?", name).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &list, nil
}

func (r *listRepo) All(ctx context.Context) ([]vocab.WordList, error) {
	var lists []vocab.WordList
	err := r.db.WithContext(ctx).Order("last_used_at DESC").Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	return lists, nil
}

func (r *listRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&vocab.WordList{}).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count lists: %w", err)
	}
	return n, nil
}

type entryRepo struct {
	db *gorm.DB
}

func (r *entryRepo) Create(ctx context.Context, entry *vocab.WordEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

func (r *entryRepo) Save(ctx context.Context, entry *vocab.WordEntry) error {
	if err := r.db.WithContext(ctx).Omit("Lemma").Save(entry).Error; err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	return nil
}

func (r *entryRepo) SaveAll(ctx context.Context, entries []*vocab.WordEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			if err := tx.Omit("Lemma").Save(e).Error; err != nil {
				return fmt.Errorf("save entry %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

func (r *entryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Nullify inbound lemma pointers so no derivative dangles.
		err := tx.Model(&vocab.WordEntry{}).
			Where("lemma_id = ?", id).
			Update("lemma_id", nil).Error
		if err != nil {
			return fmt.Errorf("detach derivatives: %w", err)
		}
		if err := tx.Delete(&vocab.WordEntry{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		return nil
	})
}

func (r *entryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&vocab.WordEntry{}).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func (r *entryRepo) DueCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&vocab.WordEntry{}).
		Where("proficiency < ?", vocab.DueThreshold).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count due entries: %w", err)
	}
	return n, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

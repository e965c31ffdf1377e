package repository

import (
	"context"
	"errors"

	"lingua/internal/models"

	"gorm.io/gorm"
)

// VocabRepository defines persistence operations for vocabulary entries.
type VocabRepository interface {
	// CreateIfAbsent inserts the entry unless the owner already has the word.
	// It returns the persisted entry and whether a new row was created; the
	// (user_id, word) unique index backs the idempotent-insert semantics.
	CreateIfAbsent(ctx context.Context, entry *models.VocabEntry) (*models.VocabEntry, bool, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, word string) error
	DeleteOwned(ctx context.Context, id, ownerID uint) error
	List(ctx context.Context, ownerID uint) ([]models.VocabEntry, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}

type vocabRepository struct {
	db *gorm.DB
}

// NewVocabRepository returns a new VocabRepository implementation.
func NewVocabRepository(db *gorm.DB) VocabRepository {
	return &vocabRepository{db: db}
}

func (r *vocabRepository) CreateIfAbsent(ctx context.Context, entry *models.VocabEntry) (*models.VocabEntry, bool, error) {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err == nil {
		return entry, true, nil
	}
	if !isUniqueConstraintError(err) {
		return nil, false, models.NewInternalError(err)
	}

	// Lost to an existing row (or a concurrent insert): fetch and return it.
	var existing models.VocabEntry
	findErr := r.db.WithContext(ctx).
		Where("user_id = ? AND word = ?", entry.UserID, entry.Word).
		First(&existing).Error
	if findErr != nil {
		return nil, false, models.NewInternalError(findErr)
	}
	return &existing, false, nil
}

func (r *vocabRepository) UpdateOwned(ctx context.Context, id, ownerID uint, word string) error {
	res := r.db.WithContext(ctx).
		Model(&models.VocabEntry{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("word", word)
	if res.Error != nil {
		if isUniqueConstraintError(res.Error) {
			return models.NewConflictError("Word already in vocabulary")
		}
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Vocabulary entry")
	}
	return nil
}

func (r *vocabRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	// Hard delete so the (user_id, word) unique index frees the slot for re-adding.
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.VocabEntry{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Vocabulary entry")
	}
	return nil
}

func (r *vocabRepository) List(ctx context.Context, ownerID uint) ([]models.VocabEntry, error) {
	var entries []models.VocabEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("word ASC").
		Find(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *vocabRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.VocabEntry{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

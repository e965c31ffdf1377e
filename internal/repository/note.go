package repository

import (
	"context"
	"errors"

	"lingua/internal/models"

	"gorm.io/gorm"
)

// NoteRepository defines persistence operations for notes. Every read and
// write is scoped to the owning account; an id owned by someone else is
// indistinguishable from an absent one.
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetOwned(ctx context.Context, id, ownerID uint) (*models.Note, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) error
	List(ctx context.Context, ownerID uint, search string) ([]models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository returns a new NoteRepository implementation.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *noteRepository) GetOwned(ctx context.Context, id, ownerID uint) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Note")
		}
		return nil, models.NewInternalError(err)
	}
	return &note, nil
}

func (r *noteRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Note{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Note")
	}
	return nil
}

func (r *noteRepository) List(ctx context.Context, ownerID uint, search string) ([]models.Note, error) {
	var notes []models.Note
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if search != "" {
		// Case-insensitive substring match on the note body.
		q = q.Where("LOWER(text) LIKE LOWER(?)", "%"+search+"%")
	}
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notes, nil
}

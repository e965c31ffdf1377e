package repository

import (
	"context"

	"lingua/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository persists append-only user feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository returns a new FeedbackRepository implementation.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(fb).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

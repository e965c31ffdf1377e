package repository

import (
	"context"

	"lingua/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for directed chat messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	// History returns both directions of the (a, b) pair, oldest first.
	History(ctx context.Context, a, b uint) ([]models.Message, error)
	// NewSince returns messages of the pair with ID greater than sinceID,
	// oldest first. IDs are the polling cursor.
	NewSince(ctx context.Context, a, b, sinceID uint) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) pairQuery(ctx context.Context, a, b uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			a, b, b, a)
}

func (r *messageRepository) History(ctx context.Context, a, b uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.pairQuery(ctx, a, b).Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) NewSince(ctx context.Context, a, b, sinceID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.pairQuery(ctx, a, b).
		Where("id > ?", sinceID).
		Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

package repository

import (
	"context"
	"errors"

	"lingua/internal/cache"
	"lingua/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines persistence operations for plaza topics and their comments.
type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	List(ctx context.Context) ([]models.Topic, error)
	GetByID(ctx context.Context, id uint) (*models.Topic, error)
	GetComments(ctx context.Context, topicID uint) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id uint) (*models.Comment, error)
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository returns a new TopicRepository implementation.
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.WithContext(ctx).
		Preload("User").
		Select("topics.*, (?) AS comments_count",
			r.db.Model(&models.Comment{}).
				Select("COUNT(*)").
				Where("comments.topic_id = topics.id")).
		Order("created_at DESC").
		Find(&topics).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return topics, nil
}

func (r *topicRepository) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	key := cache.TopicKey(id)

	err := cache.Aside(ctx, key, &topic, cache.TopicTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("User").First(&topic, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Topic")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) GetComments(ctx context.Context, topicID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *topicRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTopic(ctx, comment.TopicID)
	return nil
}

func (r *topicRepository) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

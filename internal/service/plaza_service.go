package service

import (
	"context"
	"strings"

	"lingua/internal/markup"
	"lingua/internal/models"
	"lingua/internal/repository"
)

// PlazaService provides business logic for the public forum: topics,
// comments, and comment endorsements.
type PlazaService struct {
	topicRepo  repository.TopicRepository
	socialRepo repository.SocialRepository
}

// NewPlazaService returns a new PlazaService.
func NewPlazaService(topicRepo repository.TopicRepository, socialRepo repository.SocialRepository) *PlazaService {
	return &PlazaService{topicRepo: topicRepo, socialRepo: socialRepo}
}

// CreateTopicInput is the input for publishing a topic.
type CreateTopicInput struct {
	UserID   uint
	Title    string
	Body     string
	ImageURL string
}

// TopicDetail is one topic with its full comment thread.
type TopicDetail struct {
	Topic    *models.Topic    `json:"topic"`
	Comments []models.Comment `json:"comments"`
}

// CreateTopic publishes a topic. The body is rendered from user markup to
// sanitized HTML at creation time and stored in that form.
func (s *PlazaService) CreateTopic(ctx context.Context, in CreateTopicInput) (*models.Topic, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Body is required")
	}

	html, err := markup.Render(body)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	topic := &models.Topic{
		UserID:   in.UserID,
		Title:    title,
		BodyHTML: html,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// ListTopics returns all topics, newest first.
func (s *PlazaService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.List(ctx)
}

// GetTopic returns one topic with its comments, oldest first.
func (s *PlazaService) GetTopic(ctx context.Context, id uint) (*TopicDetail, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.topicRepo.GetComments(ctx, id)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	return &TopicDetail{Topic: topic, Comments: comments}, nil
}

// AddComment replies to a topic. The topic must exist.
func (s *PlazaService) AddComment(ctx context.Context, topicID, userID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	if _, err := s.topicRepo.GetByID(ctx, topicID); err != nil {
		return nil, err
	}

	comment := &models.Comment{TopicID: topicID, UserID: userID, Text: text}
	if err := s.topicRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// LikeComment endorses a comment by crediting its author one reputation
// point. There is no edge record for comment likes, so repeated calls keep
// crediting; liking your own comment is still rejected.
func (s *PlazaService) LikeComment(ctx context.Context, commentID, likerID uint) (int, error) {
	comment, err := s.topicRepo.GetComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment.UserID == likerID {
		return 0, models.NewSelfLikeError("You cannot like your own comment")
	}

	return s.socialRepo.IncrementReputation(ctx, comment.UserID)
}

package service

import (
	"context"
	"testing"

	"lingua/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlazaService_CreateTopic(t *testing.T) {
	topicRepo := noopTopicRepo()
	var created *models.Topic
	topicRepo.createFn = func(_ context.Context, topic *models.Topic) error {
		topic.ID = 1
		created = topic
		return nil
	}
	svc := NewPlazaService(topicRepo, noopSocialRepo())

	topic, err := svc.CreateTopic(context.Background(), CreateTopicInput{
		UserID: 7,
		Title:  " Study tips ",
		Body:   "# Heading\n\nSome **bold** advice.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Study tips", topic.Title)
	assert.Contains(t, created.BodyHTML, "<h1")
	assert.Contains(t, created.BodyHTML, "<strong>bold</strong>")
}

func TestPlazaService_CreateTopic_SanitizesBody(t *testing.T) {
	topicRepo := noopTopicRepo()
	topicRepo.createFn = func(_ context.Context, _ *models.Topic) error { return nil }
	svc := NewPlazaService(topicRepo, noopSocialRepo())

	topic, err := svc.CreateTopic(context.Background(), CreateTopicInput{
		UserID: 7,
		Title:  "XSS attempt",
		Body:   "hello <script>alert(1)</script> world",
	})
	require.NoError(t, err)
	assert.NotContains(t, topic.BodyHTML, "<script>")
}

func TestPlazaService_CreateTopic_Validation(t *testing.T) {
	svc := NewPlazaService(noopTopicRepo(), noopSocialRepo())

	_, err := svc.CreateTopic(context.Background(), CreateTopicInput{UserID: 7, Title: "", Body: "b"})
	require.Error(t, err)

	_, err = svc.CreateTopic(context.Background(), CreateTopicInput{UserID: 7, Title: "t", Body: "  "})
	require.Error(t, err)
}

func TestPlazaService_AddComment(t *testing.T) {
	topicRepo := noopTopicRepo()
	svc := NewPlazaService(topicRepo, noopSocialRepo())

	comment, err := svc.AddComment(context.Background(), 3, 7, " nice post ")
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Text)
	assert.Equal(t, uint(3), comment.TopicID)

	topicRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Topic, error) {
		return nil, models.NewNotFoundError("Topic")
	}
	_, err = svc.AddComment(context.Background(), 99, 7, "orphan")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPlazaService_LikeComment(t *testing.T) {
	topicRepo := noopTopicRepo()
	topicRepo.getCommentFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: 4, UserID: 2}, nil
	}
	social := noopSocialRepo()
	social.incrementReputationFn = func(_ context.Context, targetID uint) (int, error) {
		assert.Equal(t, uint(2), targetID)
		return 6, nil
	}
	svc := NewPlazaService(topicRepo, social)

	count, err := svc.LikeComment(context.Background(), 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	// Author liking their own comment is rejected.
	_, err = svc.LikeComment(context.Background(), 4, 2)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeSelfLike, appErr.Code)
}

func TestPlazaService_GetTopic(t *testing.T) {
	topicRepo := noopTopicRepo()
	topicRepo.getByIDFn = func(_ context.Context, id uint) (*models.Topic, error) {
		return &models.Topic{ID: id, Title: "Thread"}, nil
	}
	svc := NewPlazaService(topicRepo, noopSocialRepo())

	detail, err := svc.GetTopic(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Thread", detail.Topic.Title)
	assert.NotNil(t, detail.Comments)
}

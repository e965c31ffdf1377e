package service

import (
	"context"
	"strings"

	"lingua/internal/models"
	"lingua/internal/repository"
)

// ChatService provides business logic for direct messages. Delivery is
// poll-based: clients fetch history, then repeatedly ask for messages newer
// than the last ID they have seen.
type ChatService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewChatService returns a new ChatService.
func NewChatService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{messageRepo: messageRepo, userRepo: userRepo}
}

// SendMessageInput is the input for sending a direct message.
type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Text       string
}

// Send stores a message for the receiver to pick up on their next poll.
func (s *ChatService) Send(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Message text is required")
	}

	exists, err := s.userRepo.Exists(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User")
	}

	msg := &models.Message{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Text:       text,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns the full conversation between the viewer and the other
// account, oldest first.
func (s *ChatService) History(ctx context.Context, viewerID, otherID uint) ([]models.Message, error) {
	exists, err := s.userRepo.Exists(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User")
	}

	msgs, err := s.messageRepo.History(ctx, viewerID, otherID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// NewSince returns conversation messages with ID greater than sinceID,
// oldest first. An up-to-date cursor yields an empty slice.
func (s *ChatService) NewSince(ctx context.Context, viewerID, otherID, sinceID uint) ([]models.Message, error) {
	exists, err := s.userRepo.Exists(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User")
	}

	msgs, err := s.messageRepo.NewSince(ctx, viewerID, otherID, sinceID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

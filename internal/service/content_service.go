// Package service provides application business logic (notes, vocabulary, plaza, chat).
package service

import (
	"context"
	"strings"

	"lingua/internal/models"
	"lingua/internal/repository"
)

// ContentService provides business logic for personal study content:
// notes, the vocabulary list and feedback.
type ContentService struct {
	noteRepo     repository.NoteRepository
	vocabRepo    repository.VocabRepository
	feedbackRepo repository.FeedbackRepository
}

// NewContentService returns a new ContentService.
func NewContentService(
	noteRepo repository.NoteRepository,
	vocabRepo repository.VocabRepository,
	feedbackRepo repository.FeedbackRepository,
) *ContentService {
	return &ContentService{
		noteRepo:     noteRepo,
		vocabRepo:    vocabRepo,
		feedbackRepo: feedbackRepo,
	}
}

// CreateNoteInput is the input for creating a note.
type CreateNoteInput struct {
	UserID  uint
	Text    string
	Summary string
}

// AddVocabInput is the input for adding a vocabulary entry.
type AddVocabInput struct {
	UserID   uint
	Word     string
	Phonetic string
	Meaning  string
}

// AddVocabResult pairs the persisted entry with whether it already existed.
type AddVocabResult struct {
	Entry   *models.VocabEntry
	Existed bool
}

// CreateNote saves a new note for the user.
func (s *ContentService) CreateNote(ctx context.Context, in CreateNoteInput) (*models.Note, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Note text is required")
	}

	note := &models.Note{
		UserID:  in.UserID,
		Text:    text,
		Summary: strings.TrimSpace(in.Summary),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// GetNote returns one of the user's notes.
func (s *ContentService) GetNote(ctx context.Context, id, userID uint) (*models.Note, error) {
	return s.noteRepo.GetOwned(ctx, id, userID)
}

// DeleteNote removes one of the user's notes.
func (s *ContentService) DeleteNote(ctx context.Context, id, userID uint) error {
	return s.noteRepo.DeleteOwned(ctx, id, userID)
}

// ListNotes returns the user's notes, newest first, optionally filtered by a
// case-insensitive substring of the text.
func (s *ContentService) ListNotes(ctx context.Context, userID uint, search string) ([]models.Note, error) {
	return s.noteRepo.List(ctx, userID, strings.TrimSpace(search))
}

// AddVocab saves a word to the user's vocabulary. Adding a word that is
// already saved is not an error; the existing entry is returned untouched.
func (s *ContentService) AddVocab(ctx context.Context, in AddVocabInput) (*AddVocabResult, error) {
	word := strings.TrimSpace(in.Word)
	if word == "" {
		return nil, models.NewValidationError("Word is required")
	}
	meaning := strings.TrimSpace(in.Meaning)
	if meaning == "" {
		return nil, models.NewValidationError("Meaning is required")
	}

	entry, created, err := s.vocabRepo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID:   in.UserID,
		Word:     word,
		Phonetic: strings.TrimSpace(in.Phonetic),
		Meaning:  meaning,
	})
	if err != nil {
		return nil, err
	}
	return &AddVocabResult{Entry: entry, Existed: !created}, nil
}

// RenameVocab changes the word of one of the user's entries.
func (s *ContentService) RenameVocab(ctx context.Context, id, userID uint, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return models.NewValidationError("Word is required")
	}
	return s.vocabRepo.UpdateOwned(ctx, id, userID, word)
}

// DeleteVocab removes one of the user's entries.
func (s *ContentService) DeleteVocab(ctx context.Context, id, userID uint) error {
	return s.vocabRepo.DeleteOwned(ctx, id, userID)
}

// ListVocab returns the user's vocabulary, alphabetical by word.
func (s *ContentService) ListVocab(ctx context.Context, userID uint) ([]models.VocabEntry, error) {
	return s.vocabRepo.List(ctx, userID)
}

// SubmitFeedback records a feedback message. Feedback is append-only and
// never shown back through the API.
func (s *ContentService) SubmitFeedback(ctx context.Context, userID uint, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.NewValidationError("Feedback text is required")
	}
	return s.feedbackRepo.Create(ctx, &models.Feedback{UserID: userID, Text: text})
}

package repository

import (
	"context"
	"testing"

	"lingua/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepository_GetOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	other := &models.User{Username: "other", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)

	note := &models.Note{UserID: owner.ID, Text: "remember the particles"}
	require.NoError(t, repo.Create(ctx, note))

	found, err := repo.GetOwned(ctx, note.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Text, found.Text)

	// Someone else's note looks exactly like a missing one.
	_, err = repo.GetOwned(ctx, note.ID, other.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	_, err = repo.GetOwned(ctx, 9999, owner.ID)
	require.Error(t, err)
}

func TestNoteRepository_DeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	other := &models.User{Username: "other", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)

	note := &models.Note{UserID: owner.ID, Text: "to be deleted"}
	require.NoError(t, repo.Create(ctx, note))

	err := repo.DeleteOwned(ctx, note.ID, other.ID)
	require.Error(t, err)

	require.NoError(t, repo.DeleteOwned(ctx, note.ID, owner.ID))

	_, err = repo.GetOwned(ctx, note.ID, owner.ID)
	require.Error(t, err)
}

func TestNoteRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	other := &models.User{Username: "other", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, repo.Create(ctx, &models.Note{UserID: owner.ID, Text: "Grammar basics"}))
	require.NoError(t, repo.Create(ctx, &models.Note{UserID: owner.ID, Text: "Listening practice"}))
	require.NoError(t, repo.Create(ctx, &models.Note{UserID: other.ID, Text: "grammar from someone else"}))

	notes, err := repo.List(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	notes, err = repo.List(ctx, owner.ID, "GRAMMAR")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Grammar basics", notes[0].Text)
}

package repository

import (
	"context"
	"testing"

	"lingua/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabRepository_CreateIfAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVocabRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)

	entry, created, err := repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID:  owner.ID,
		Word:    "ephemeral",
		Meaning: "lasting a very short time",
	})
	require.NoError(t, err)
	assert.True(t, created)
	firstID := entry.ID

	// Adding the same word again hands back the existing row.
	entry, created, err = repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID:  owner.ID,
		Word:    "ephemeral",
		Meaning: "a different meaning, ignored",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, firstID, entry.ID)
	assert.Equal(t, "lasting a very short time", entry.Meaning)

	// A different user is free to save the same word.
	other := &models.User{Username: "other", Password: "hashed"}
	require.NoError(t, db.Create(other).Error)

	_, created, err = repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID:  other.ID,
		Word:    "ephemeral",
		Meaning: "lasting a very short time",
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestVocabRepository_UpdateOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVocabRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)

	entry, _, err := repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID: owner.ID, Word: "old", Meaning: "m",
	})
	require.NoError(t, err)
	taken, _, err := repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID: owner.ID, Word: "taken", Meaning: "m",
	})
	require.NoError(t, err)
	_ = taken

	require.NoError(t, repo.UpdateOwned(ctx, entry.ID, owner.ID, "renamed"))

	// Renaming onto an existing word is a conflict.
	err = repo.UpdateOwned(ctx, entry.ID, owner.ID, "taken")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	err = repo.UpdateOwned(ctx, 9999, owner.ID, "whatever")
	require.Error(t, err)
}

func TestVocabRepository_DeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVocabRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)

	entry, _, err := repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID: owner.ID, Word: "transient", Meaning: "m",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteOwned(ctx, entry.ID, owner.ID))

	// The slot is freed: the same word can be saved again.
	_, created, err := repo.CreateIfAbsent(ctx, &models.VocabEntry{
		UserID: owner.ID, Word: "transient", Meaning: "m",
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestVocabRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVocabRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Password: "hashed"}
	require.NoError(t, db.Create(owner).Error)

	for _, w := range []string{"zeal", "apt", "mire"} {
		_, _, err := repo.CreateIfAbsent(ctx, &models.VocabEntry{
			UserID: owner.ID, Word: w, Meaning: "m",
		})
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "apt", entries[0].Word)
	assert.Equal(t, "mire", entries[1].Word)
	assert.Equal(t, "zeal", entries[2].Word)

	count, err := repo.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

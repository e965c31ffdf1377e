package service

import (
	"context"
	"testing"

	"lingua/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialService_ToggleLike_Self(t *testing.T) {
	svc := NewSocialService(noopSocialRepo(), noopUserRepo(), noopVocabRepo())

	_, err := svc.ToggleLike(context.Background(), 5, 5)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeSelfLike, appErr.Code)
}

func TestSocialService_ToggleLike_MissingTarget(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewSocialService(noopSocialRepo(), userRepo, noopVocabRepo())

	_, err := svc.ToggleLike(context.Background(), 5, 6)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestSocialService_ToggleLike(t *testing.T) {
	social := noopSocialRepo()
	social.toggleLikeFn = func(_ context.Context, likerID, likedID uint) (*models.LikeResult, error) {
		assert.Equal(t, uint(5), likerID)
		assert.Equal(t, uint(6), likedID)
		return &models.LikeResult{Liked: true, NewCount: 4}, nil
	}
	svc := NewSocialService(social, noopUserRepo(), noopVocabRepo())

	res, err := svc.ToggleLike(context.Background(), 5, 6)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, 4, res.NewCount)
}

func TestSocialService_Rank(t *testing.T) {
	social := noopSocialRepo()
	social.rankingsFn = func(_ context.Context) ([]models.RankEntry, error) {
		return []models.RankEntry{
			{AccountID: 2, Username: "alice", VocabCount: 9, ReputationScore: 1},
			{AccountID: 3, Username: "bob", VocabCount: 4, ReputationScore: 8},
		}, nil
	}
	social.likedIDsFn = func(_ context.Context, viewerID uint) ([]uint, error) {
		assert.Equal(t, uint(1), viewerID)
		return []uint{3}, nil
	}
	svc := NewSocialService(social, noopUserRepo(), noopVocabRepo())

	view, err := svc.Rank(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, view.Rankings, 2)
	assert.Equal(t, []uint{3}, view.LikedIDs)
}

func TestSocialService_Rank_NoLikes(t *testing.T) {
	svc := NewSocialService(noopSocialRepo(), noopUserRepo(), noopVocabRepo())

	view, err := svc.Rank(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, view.LikedIDs)
	assert.Empty(t, view.LikedIDs)
}

func TestSocialService_UpdateAvatar(t *testing.T) {
	userRepo := noopUserRepo()
	var gotID uint
	var gotAvatar string
	userRepo.updateAvatarFn = func(_ context.Context, id uint, avatar string) error {
		gotID = id
		gotAvatar = avatar
		return nil
	}
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Avatar: gotAvatar}, nil
	}
	svc := NewSocialService(noopSocialRepo(), userRepo, noopVocabRepo())

	profile, err := svc.UpdateAvatar(context.Background(), 1, "https://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, uint(1), gotID)
	assert.Equal(t, "https://example.com/a.png", profile.Avatar)
}

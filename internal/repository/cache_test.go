package repository

import (
	"context"
	"testing"

	"lingua/internal/cache"
	"lingua/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestCache backs the cache package with a live miniredis for the test
// and detaches it afterwards.
func withTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func TestUserRepository_UpdateAvatar_KeepsCredentialHash(t *testing.T) {
	withTestCache(t)
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", Password: "bcrypt-hash"}
	require.NoError(t, repo.Create(ctx, user))

	// Warm the cache. The cached copy omits the credential hash, so a
	// later profile write must never round-trip it back into the row.
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cached.Password)

	require.NoError(t, repo.UpdateAvatar(ctx, user.ID, "https://example.com/a.png"))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "bcrypt-hash", stored.Password)
	assert.Equal(t, "https://example.com/a.png", stored.Avatar)
}

func TestUserRepository_GetByID_CacheInvalidatedOnAvatarUpdate(t *testing.T) {
	withTestCache(t)
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, user))

	_, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateAvatar(ctx, user.ID, "https://example.com/new.png"))

	fresh, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new.png", fresh.Avatar)
}

func TestSocialRepository_Rankings_FreshAfterToggle(t *testing.T) {
	withTestCache(t)
	db := setupTestDB(t)
	repo := NewSocialRepository(db)
	ctx := context.Background()

	liker := &models.User{Username: "liker", Password: "hashed"}
	liked := &models.User{Username: "liked", Password: "hashed"}
	require.NoError(t, db.Create(liker).Error)
	require.NoError(t, db.Create(liked).Error)

	// Warm the rankings cache before the toggle.
	_, err := repo.Rankings(ctx)
	require.NoError(t, err)

	_, err = repo.ToggleLike(ctx, liker.ID, liked.ID)
	require.NoError(t, err)

	// The toggle invalidates the cached board; the next read must show
	// the new reputation even inside the TTL window.
	entries, err := repo.Rankings(ctx)
	require.NoError(t, err)
	byID := make(map[uint]models.RankEntry, len(entries))
	for _, e := range entries {
		byID[e.AccountID] = e
	}
	assert.Equal(t, 1, byID[liked.ID].ReputationScore)
}

func TestTopicRepository_GetByID_CacheInvalidatedOnComment(t *testing.T) {
	mr := withTestCache(t)
	db := setupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	author := &models.User{Username: "author", Password: "hashed"}
	require.NoError(t, db.Create(author).Error)
	topic := &models.Topic{UserID: author.ID, Title: "hello", BodyHTML: "<p>hi</p>"}
	require.NoError(t, repo.Create(ctx, topic))

	// Warm, then write a comment; the cached topic entry must be dropped.
	_, err := repo.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.TopicKey(topic.ID)))

	comment := &models.Comment{TopicID: topic.ID, UserID: author.ID, Text: "first"}
	require.NoError(t, repo.CreateComment(ctx, comment))
	assert.False(t, mr.Exists(cache.TopicKey(topic.ID)))
}

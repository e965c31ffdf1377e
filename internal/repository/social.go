package repository

import (
	"context"
	"errors"

	"lingua/internal/cache"
	"lingua/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialRepository owns the like graph and the derived reputation counter.
type SocialRepository interface {
	// ToggleLike flips the (liker, liked) edge inside one transaction and
	// adjusts the target's reputation. The unique index on the edge is the
	// mutual-exclusion gate: a concurrent duplicate insert is answered as
	// "already liked" with the current count instead of a failure.
	ToggleLike(ctx context.Context, likerID, likedID uint) (*models.LikeResult, error)
	// IncrementReputation adds one to the target's reputation and returns the
	// new count. One-way: comment likes have no edge record and no undo.
	IncrementReputation(ctx context.Context, targetID uint) (int, error)
	Rankings(ctx context.Context) ([]models.RankEntry, error)
	LikedIDs(ctx context.Context, likerID uint) ([]uint, error)
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository returns a new SocialRepository implementation.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) ToggleLike(ctx context.Context, likerID, likedID uint) (*models.LikeResult, error) {
	result := &models.LikeResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Toggle-off first: a present edge means this is an unlike.
		res := tx.Where("liker_id = ? AND liked_id = ?", likerID, likedID).Delete(&models.Like{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}

		if res.RowsAffected == 1 {
			result.Liked = false
			if err := tx.Model(&models.User{}).
				Where("id = ?", likedID).
				Update("reputation_score",
					gorm.Expr("CASE WHEN reputation_score > 0 THEN reputation_score - 1 ELSE 0 END")).Error; err != nil {
				return models.NewInternalError(err)
			}
			return r.readCount(tx, likedID, &result.NewCount)
		}

		return r.applyLike(tx, likerID, likedID, result)
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateUser(ctx, likedID)
	cache.InvalidateRank(ctx)
	return result, nil
}

// applyLike inserts the edge and increments the target's reputation. A
// concurrent toggle for the same pair blocks on the unique index until the
// winner commits; the loser's insert then resolves to zero rows. ON CONFLICT
// DO NOTHING keeps that path error-free, which matters on Postgres: a unique
// violation would abort the whole transaction and poison the count read.
func (r *socialRepository) applyLike(tx *gorm.DB, likerID, likedID uint, result *models.LikeResult) error {
	edge := models.Like{LikerID: likerID, LikedID: likedID}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "liker_id"}, {Name: "liked_id"}},
		DoNothing: true,
	}).Create(&edge)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}

	result.Liked = true
	if res.RowsAffected == 0 {
		// Lost the race: the edge and the increment are already applied.
		return r.readCount(tx, likedID, &result.NewCount)
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", likedID).
		Update("reputation_score", gorm.Expr("reputation_score + 1")).Error; err != nil {
		return models.NewInternalError(err)
	}
	return r.readCount(tx, likedID, &result.NewCount)
}

func (r *socialRepository) readCount(tx *gorm.DB, userID uint, out *int) error {
	var user models.User
	if err := tx.Select("reputation_score").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User")
		}
		return models.NewInternalError(err)
	}
	*out = user.ReputationScore
	return nil
}

func (r *socialRepository) IncrementReputation(ctx context.Context, targetID uint) (int, error) {
	var newCount int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", targetID).
			Update("reputation_score", gorm.Expr("reputation_score + 1"))
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("User")
		}
		return r.readCount(tx, targetID, &newCount)
	})
	if err != nil {
		return 0, err
	}

	cache.InvalidateUser(ctx, targetID)
	cache.InvalidateRank(ctx)
	return newCount, nil
}

func (r *socialRepository) Rankings(ctx context.Context) ([]models.RankEntry, error) {
	var entries []models.RankEntry

	err := cache.Aside(ctx, cache.RankKey(), &entries, cache.RankTTL, func() error {
		// vocab_count is computed live; it is never stored on the account.
		err := r.db.WithContext(ctx).
			Model(&models.User{}).
			Select(`users.id AS account_id,
				users.username,
				users.reputation_score,
				users.avatar,
				(SELECT COUNT(*) FROM vocab_entries v
					WHERE v.user_id = users.id AND v.deleted_at IS NULL) AS vocab_count`).
			Order("vocab_count DESC, reputation_score DESC").
			Scan(&entries).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *socialRepository) LikedIDs(ctx context.Context, likerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("liker_id = ?", likerID).
		Pluck("liked_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

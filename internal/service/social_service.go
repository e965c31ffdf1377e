package service

import (
	"context"

	"lingua/internal/models"
	"lingua/internal/repository"
)

// SocialService provides business logic for account likes, the reputation
// leaderboard, and profiles.
type SocialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
	vocabRepo  repository.VocabRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(
	socialRepo repository.SocialRepository,
	userRepo repository.UserRepository,
	vocabRepo repository.VocabRepository,
) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		userRepo:   userRepo,
		vocabRepo:  vocabRepo,
	}
}

// RankView is the leaderboard together with the viewer's like state, so the
// client can render which rows the viewer has already endorsed.
type RankView struct {
	Rankings []models.RankEntry `json:"rankings"`
	LikedIDs []uint             `json:"liked_ids"`
}

// ToggleLike flips the viewer's like on the target account. Liking yourself
// is rejected before anything touches the like graph.
func (s *SocialService) ToggleLike(ctx context.Context, likerID, likedID uint) (*models.LikeResult, error) {
	if likerID == likedID {
		return nil, models.NewSelfLikeError("You cannot like yourself")
	}

	exists, err := s.userRepo.Exists(ctx, likedID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User")
	}

	return s.socialRepo.ToggleLike(ctx, likerID, likedID)
}

// Rank returns the leaderboard ordered by vocabulary size, reputation
// breaking ties, plus the IDs the viewer has liked.
func (s *SocialService) Rank(ctx context.Context, viewerID uint) (*RankView, error) {
	rankings, err := s.socialRepo.Rankings(ctx)
	if err != nil {
		return nil, err
	}

	likedIDs, err := s.socialRepo.LikedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if likedIDs == nil {
		likedIDs = []uint{}
	}

	return &RankView{Rankings: rankings, LikedIDs: likedIDs}, nil
}

// Profile returns the safe projection of an account.
func (s *SocialService) Profile(ctx context.Context, userID uint) (*models.PublicProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

// UpdateAvatar changes the account's avatar URL.
func (s *SocialService) UpdateAvatar(ctx context.Context, userID uint, avatar string) (*models.PublicProfile, error) {
	if err := s.userRepo.UpdateAvatar(ctx, userID, avatar); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

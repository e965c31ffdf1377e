package service

import (
	"context"

	"lingua/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	existsFn        func(context.Context, uint) (bool, error)
	createFn        func(context.Context, *models.User) error
	updateAvatarFn  func(context.Context, uint, string) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) UpdateAvatar(ctx context.Context, id uint, avatar string) error {
	return s.updateAvatarFn(ctx, id, avatar)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateAvatarFn:  func(_ context.Context, _ uint, _ string) error { return nil },
	}
}

// socialRepoStub is a stub for repository.SocialRepository.
type socialRepoStub struct {
	toggleLikeFn          func(context.Context, uint, uint) (*models.LikeResult, error)
	incrementReputationFn func(context.Context, uint) (int, error)
	rankingsFn            func(context.Context) ([]models.RankEntry, error)
	likedIDsFn            func(context.Context, uint) ([]uint, error)
}

func (s *socialRepoStub) ToggleLike(ctx context.Context, likerID, likedID uint) (*models.LikeResult, error) {
	return s.toggleLikeFn(ctx, likerID, likedID)
}
func (s *socialRepoStub) IncrementReputation(ctx context.Context, targetID uint) (int, error) {
	return s.incrementReputationFn(ctx, targetID)
}
func (s *socialRepoStub) Rankings(ctx context.Context) ([]models.RankEntry, error) {
	return s.rankingsFn(ctx)
}
func (s *socialRepoStub) LikedIDs(ctx context.Context, likerID uint) ([]uint, error) {
	return s.likedIDsFn(ctx, likerID)
}

func noopSocialRepo() *socialRepoStub {
	return &socialRepoStub{
		toggleLikeFn: func(_ context.Context, _, _ uint) (*models.LikeResult, error) {
			return &models.LikeResult{Liked: true, NewCount: 1}, nil
		},
		incrementReputationFn: func(_ context.Context, _ uint) (int, error) { return 1, nil },
		rankingsFn:            func(_ context.Context) ([]models.RankEntry, error) { return nil, nil },
		likedIDsFn:            func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// topicRepoStub is a stub for repository.TopicRepository.
type topicRepoStub struct {
	createFn        func(context.Context, *models.Topic) error
	listFn          func(context.Context) ([]models.Topic, error)
	getByIDFn       func(context.Context, uint) (*models.Topic, error)
	getCommentsFn   func(context.Context, uint) ([]models.Comment, error)
	createCommentFn func(context.Context, *models.Comment) error
	getCommentFn    func(context.Context, uint) (*models.Comment, error)
}

func (s *topicRepoStub) Create(ctx context.Context, topic *models.Topic) error {
	return s.createFn(ctx, topic)
}
func (s *topicRepoStub) List(ctx context.Context) ([]models.Topic, error) {
	return s.listFn(ctx)
}
func (s *topicRepoStub) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	return s.getByIDFn(ctx, id)
}
func (s *topicRepoStub) GetComments(ctx context.Context, topicID uint) ([]models.Comment, error) {
	return s.getCommentsFn(ctx, topicID)
}
func (s *topicRepoStub) CreateComment(ctx context.Context, comment *models.Comment) error {
	return s.createCommentFn(ctx, comment)
}
func (s *topicRepoStub) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, id)
}

func noopTopicRepo() *topicRepoStub {
	return &topicRepoStub{
		createFn:        func(_ context.Context, _ *models.Topic) error { return nil },
		listFn:          func(_ context.Context) ([]models.Topic, error) { return nil, nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.Topic, error) { return &models.Topic{}, nil },
		getCommentsFn:   func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		createCommentFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getCommentFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
	}
}

// messageRepoStub is a stub for repository.MessageRepository.
type messageRepoStub struct {
	createFn   func(context.Context, *models.Message) error
	historyFn  func(context.Context, uint, uint) ([]models.Message, error)
	newSinceFn func(context.Context, uint, uint, uint) ([]models.Message, error)
}

func (s *messageRepoStub) Create(ctx context.Context, msg *models.Message) error {
	return s.createFn(ctx, msg)
}
func (s *messageRepoStub) History(ctx context.Context, a, b uint) ([]models.Message, error) {
	return s.historyFn(ctx, a, b)
}
func (s *messageRepoStub) NewSince(ctx context.Context, a, b, sinceID uint) ([]models.Message, error) {
	return s.newSinceFn(ctx, a, b, sinceID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:   func(_ context.Context, _ *models.Message) error { return nil },
		historyFn:  func(_ context.Context, _, _ uint) ([]models.Message, error) { return nil, nil },
		newSinceFn: func(_ context.Context, _, _, _ uint) ([]models.Message, error) { return nil, nil },
	}
}

// noteRepoStub is a stub for repository.NoteRepository.
type noteRepoStub struct {
	createFn      func(context.Context, *models.Note) error
	getOwnedFn    func(context.Context, uint, uint) (*models.Note, error)
	deleteOwnedFn func(context.Context, uint, uint) error
	listFn        func(context.Context, uint, string) ([]models.Note, error)
}

func (s *noteRepoStub) Create(ctx context.Context, note *models.Note) error {
	return s.createFn(ctx, note)
}
func (s *noteRepoStub) GetOwned(ctx context.Context, id, ownerID uint) (*models.Note, error) {
	return s.getOwnedFn(ctx, id, ownerID)
}
func (s *noteRepoStub) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	return s.deleteOwnedFn(ctx, id, ownerID)
}
func (s *noteRepoStub) List(ctx context.Context, ownerID uint, search string) ([]models.Note, error) {
	return s.listFn(ctx, ownerID, search)
}

func noopNoteRepo() *noteRepoStub {
	return &noteRepoStub{
		createFn:      func(_ context.Context, _ *models.Note) error { return nil },
		getOwnedFn:    func(_ context.Context, _, _ uint) (*models.Note, error) { return &models.Note{}, nil },
		deleteOwnedFn: func(_ context.Context, _, _ uint) error { return nil },
		listFn:        func(_ context.Context, _ uint, _ string) ([]models.Note, error) { return nil, nil },
	}
}

// vocabRepoStub is a stub for repository.VocabRepository.
type vocabRepoStub struct {
	createIfAbsentFn func(context.Context, *models.VocabEntry) (*models.VocabEntry, bool, error)
	updateOwnedFn    func(context.Context, uint, uint, string) error
	deleteOwnedFn    func(context.Context, uint, uint) error
	listFn           func(context.Context, uint) ([]models.VocabEntry, error)
	countByOwnerFn   func(context.Context, uint) (int64, error)
}

func (s *vocabRepoStub) CreateIfAbsent(ctx context.Context, entry *models.VocabEntry) (*models.VocabEntry, bool, error) {
	return s.createIfAbsentFn(ctx, entry)
}
func (s *vocabRepoStub) UpdateOwned(ctx context.Context, id, ownerID uint, word string) error {
	return s.updateOwnedFn(ctx, id, ownerID, word)
}
func (s *vocabRepoStub) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	return s.deleteOwnedFn(ctx, id, ownerID)
}
func (s *vocabRepoStub) List(ctx context.Context, ownerID uint) ([]models.VocabEntry, error) {
	return s.listFn(ctx, ownerID)
}
func (s *vocabRepoStub) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	return s.countByOwnerFn(ctx, ownerID)
}

func noopVocabRepo() *vocabRepoStub {
	return &vocabRepoStub{
		createIfAbsentFn: func(_ context.Context, e *models.VocabEntry) (*models.VocabEntry, bool, error) {
			return e, true, nil
		},
		updateOwnedFn:  func(_ context.Context, _, _ uint, _ string) error { return nil },
		deleteOwnedFn:  func(_ context.Context, _, _ uint) error { return nil },
		listFn:         func(_ context.Context, _ uint) ([]models.VocabEntry, error) { return nil, nil },
		countByOwnerFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// feedbackRepoStub is a stub for repository.FeedbackRepository.
type feedbackRepoStub struct {
	createFn func(context.Context, *models.Feedback) error
}

func (s *feedbackRepoStub) Create(ctx context.Context, fb *models.Feedback) error {
	return s.createFn(ctx, fb)
}

func noopFeedbackRepo() *feedbackRepoStub {
	return &feedbackRepoStub{
		createFn: func(_ context.Context, _ *models.Feedback) error { return nil },
	}
}

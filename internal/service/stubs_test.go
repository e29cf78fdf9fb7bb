package service

import (
	"context"

	"connecthub/internal/models"
)

// userStoreStub is a stub for store.UserStore.
type userStoreStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	searchFn        func(context.Context, string, int) ([]models.User, error)
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userStoreStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userStoreStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userStoreStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userStoreStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userStoreStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userStoreStub) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	return s.searchFn(ctx, query, limit)
}
func (s *userStoreStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserStore() *userStoreStub {
	return &userStoreStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		searchFn:        func(_ context.Context, _ string, _ int) ([]models.User, error) { return nil, nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// postStoreStub is a stub for store.PostStore.
type postStoreStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint, uint) (*models.Post, error)
	listFn         func(context.Context, int, int, uint) ([]*models.Post, error)
	listByAuthorFn func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	searchFn       func(context.Context, string, int, uint) ([]*models.Post, error)
	deleteFn       func(context.Context, uint) error
	toggleLikeFn   func(context.Context, uint, uint) (bool, int, error)
	addCommentFn   func(context.Context, *models.Comment) error
	listCommentsFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *postStoreStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postStoreStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postStoreStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postStoreStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset, currentUserID)
}
func (s *postStoreStub) Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, currentUserID)
}
func (s *postStoreStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postStoreStub) ToggleLike(ctx context.Context, postID, userID uint) (bool, int, error) {
	return s.toggleLikeFn(ctx, postID, userID)
}
func (s *postStoreStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *postStoreStub) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listCommentsFn(ctx, postID)
}

func noopPostStore() *postStoreStub {
	return &postStoreStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn: func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		listByAuthorFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		searchFn:       func(_ context.Context, _ string, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		toggleLikeFn:   func(_ context.Context, _, _ uint) (bool, int, error) { return true, 1, nil },
		addCommentFn:   func(_ context.Context, _ *models.Comment) error { return nil },
		listCommentsFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
	}
}

// followStoreStub is a stub for store.FollowStore.
type followStoreStub struct {
	toggleFn       func(context.Context, uint, uint) (bool, error)
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	followerIDsFn  func(context.Context, uint) ([]uint, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followStoreStub) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.toggleFn(ctx, followerID, followingID)
}
func (s *followStoreStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followStoreStub) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followerIDsFn(ctx, userID)
}
func (s *followStoreStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}

func noopFollowStore() *followStoreStub {
	return &followStoreStub{
		toggleFn:       func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isFollowingFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followerIDsFn:  func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		followingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// messageStoreStub is a stub for store.MessageStore.
type messageStoreStub struct {
	createFn       func(context.Context, *models.ChatMessage) error
	conversationFn func(context.Context, uint, uint) ([]*models.ChatMessage, error)
}

func (s *messageStoreStub) Create(ctx context.Context, msg *models.ChatMessage) error {
	return s.createFn(ctx, msg)
}
func (s *messageStoreStub) Conversation(ctx context.Context, userA, userB uint) ([]*models.ChatMessage, error) {
	return s.conversationFn(ctx, userA, userB)
}

func noopMessageStore() *messageStoreStub {
	return &messageStoreStub{
		createFn:       func(_ context.Context, _ *models.ChatMessage) error { return nil },
		conversationFn: func(_ context.Context, _, _ uint) ([]*models.ChatMessage, error) { return nil, nil },
	}
}

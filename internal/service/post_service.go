package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"connecthub/internal/models"
	"connecthub/internal/store"
)

type PostService struct {
	posts store.PostStore
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// LikeResult reports the post-flip state of a like toggle.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

func NewPostService(posts store.PostStore) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > models.MaxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 280 characters)")
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  content,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListFeed(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.posts.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID uint, in ListPostsInput) ([]*models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) SearchPosts(ctx context.Context, query string, currentUserID uint) ([]*models.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.posts.Search(ctx, query, store.SearchLimit, currentUserID)
}

// DeletePost removes the post after verifying the caller owns it. The
// lookup happens first so a missing post reports NOT_FOUND, not FORBIDDEN.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.posts.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.posts.Delete(ctx, in.PostID)
}

func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (*LikeResult, error) {
	liked, count, err := s.posts.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, LikesCount: count}, nil
}

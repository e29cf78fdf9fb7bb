package service

import (
	"context"
	"strings"

	"connecthub/internal/models"
	"connecthub/internal/store"
)

// MaxCommentLen bounds comment content length in characters.
const MaxCommentLen = 1000

type CommentService struct {
	posts store.PostStore
}

type AddCommentInput struct {
	PostID  uint
	UserID  uint
	Content string
}

func NewCommentService(posts store.PostStore) *CommentService {
	return &CommentService{posts: posts}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > MaxCommentLen {
		return nil, models.NewValidationError("Content too long (max 1000 characters)")
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: content,
	}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.posts.ListComments(ctx, postID)
}

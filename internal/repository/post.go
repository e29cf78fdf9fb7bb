package repository

import (
	"context"
	"errors"
	"strings"

	"connecthub/internal/cache"
	"connecthub/internal/models"
	"connecthub/internal/store"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a GORM-backed store.PostStore implementation.
func NewPostRepository(db *gorm.DB) store.PostStore {
	return &postRepository{db: db}
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	var post models.Post

	fetch := func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only anonymous reads go through the cache; the Liked flag is
	// viewer-specific and must not be shared.
	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	like := "%" + strings.ToLower(query) + "%"
	if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("lower(content) LIKE ?", like).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) ToggleLike(ctx context.Context, postID, userID uint) (bool, int, error) {
	var liked bool
	var likesCount int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return models.NewNotFoundError("Post", postID)
		}

		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
		} else {
			if err := tx.Create(&models.Like{UserID: userID, PostID: postID}).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likesCount).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return false, 0, appErr
		}
		return false, 0, models.NewInternalError(err)
	}

	cache.InvalidatePost(ctx, postID)
	return liked, int(likesCount), nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return models.NewNotFoundError("Post", comment.PostID)
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *postRepository) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if exists == 0 {
		return nil, models.NewNotFoundError("Post", postID)
	}

	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

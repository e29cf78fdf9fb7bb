package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"connecthub/internal/models"
)

// postRecord is a post plus its embedded like-set and comment list. seq
// breaks creation-time ties so listings stay deterministic.
type postRecord struct {
	post     models.Post
	seq      uint64
	likes    map[uint]struct{}
	comments []models.Comment
}

// PostMemory is the in-memory PostStore. Likes and comments live inside the
// post record so like/comment mutations and the counts they produce commit
// under the same lock.
type PostMemory struct {
	mu            sync.RWMutex
	nextID        uint
	nextCommentID uint
	nextSeq       uint64
	records       []*postRecord
	byID          map[uint]*postRecord
}

// NewPostMemory returns an empty in-memory post store.
func NewPostMemory() *PostMemory {
	return &PostMemory{byID: make(map[uint]*postRecord)}
}

func (s *PostMemory) Create(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.nextSeq++
	post.ID = s.nextID
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	post.LikesCount = 0
	post.CommentsCount = 0
	post.Liked = false

	rec := &postRecord{
		post:  *post,
		seq:   s.nextSeq,
		likes: make(map[uint]struct{}),
	}
	s.records = append(s.records, rec)
	s.byID[post.ID] = rec
	return nil
}

// view builds the outgoing copy of a record with its computed fields. Caller
// must hold at least the read lock.
func (s *PostMemory) view(rec *postRecord, currentUserID uint) *models.Post {
	p := rec.post
	p.LikesCount = len(rec.likes)
	p.CommentsCount = len(rec.comments)
	if currentUserID != 0 {
		_, p.Liked = rec.likes[currentUserID]
	}
	return &p
}

func (s *PostMemory) GetByID(_ context.Context, id, currentUserID uint) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	return s.view(rec, currentUserID), nil
}

// collect filters, orders newest-first (creation time, then insertion
// sequence) and pages the matching records. Caller must hold the read lock.
func (s *PostMemory) collect(match func(*postRecord) bool, limit, offset int, currentUserID uint) []*models.Post {
	matched := make([]*postRecord, 0, len(s.records))
	for _, rec := range s.records {
		if match(rec) {
			matched = append(matched, rec)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].post.CreatedAt.Equal(matched[j].post.CreatedAt) {
			return matched[i].post.CreatedAt.After(matched[j].post.CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []*models.Post{}
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]*models.Post, 0, end-offset)
	for _, rec := range matched[offset:end] {
		out = append(out, s.view(rec, currentUserID))
	}
	return out
}

func (s *PostMemory) List(_ context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(*postRecord) bool { return true }, limit, offset, currentUserID), nil
}

func (s *PostMemory) ListByAuthor(_ context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(rec *postRecord) bool {
		return rec.post.UserID == authorID
	}, limit, offset, currentUserID), nil
}

func (s *PostMemory) Search(_ context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = SearchLimit
	}
	needle := strings.ToLower(query)
	return s.collect(func(rec *postRecord) bool {
		return strings.Contains(strings.ToLower(rec.post.Content), needle)
	}, limit, 0, currentUserID), nil
}

func (s *PostMemory) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return models.NewNotFoundError("Post", id)
	}
	delete(s.byID, id)
	for i, rec := range s.records {
		if rec.post.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	return nil
}

func (s *PostMemory) ToggleLike(_ context.Context, postID, userID uint) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[postID]
	if !ok {
		return false, 0, models.NewNotFoundError("Post", postID)
	}

	var liked bool
	if _, has := rec.likes[userID]; has {
		delete(rec.likes, userID)
	} else {
		rec.likes[userID] = struct{}{}
		liked = true
	}
	return liked, len(rec.likes), nil
}

func (s *PostMemory) AddComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[comment.PostID]
	if !ok {
		return models.NewNotFoundError("Post", comment.PostID)
	}

	s.nextCommentID++
	comment.ID = s.nextCommentID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	rec.comments = append(rec.comments, *comment)
	return nil
}

func (s *PostMemory) ListComments(_ context.Context, postID uint) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[postID]
	if !ok {
		return nil, models.NewNotFoundError("Post", postID)
	}

	out := make([]*models.Comment, len(rec.comments))
	for i := range rec.comments {
		c := rec.comments[i]
		out[i] = &c
	}
	// Comments are stored in insertion order; a stable sort on creation
	// time keeps that order for ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

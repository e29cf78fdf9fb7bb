package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"connecthub/internal/models"
)

// UserMemory is the in-memory UserStore. One mutex guards the whole
// collection; every operation commits atomically under it.
type UserMemory struct {
	mu         sync.RWMutex
	nextID     uint
	users      []*models.User // insertion order, for search tiebreaks
	byID       map[uint]*models.User
	byEmail    map[string]*models.User
	byUsername map[string]*models.User
}

// NewUserMemory returns an empty in-memory user store.
func NewUserMemory() *UserMemory {
	return &UserMemory{
		byID:       make(map[uint]*models.User),
		byEmail:    make(map[string]*models.User),
		byUsername: make(map[string]*models.User),
	}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Interests = append(models.StringList(nil), u.Interests...)
	c.Posts = nil
	return &c
}

func (s *UserMemory) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return models.NewDuplicateIdentityError("User with this email already exists")
	}
	if _, exists := s.byUsername[user.Username]; exists {
		return models.NewDuplicateIdentityError("Username already taken")
	}

	s.nextID++
	user.ID = s.nextID
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := cloneUser(user)
	s.users = append(s.users, stored)
	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored
	s.byUsername[stored.Username] = stored
	return nil
}

func (s *UserMemory) GetByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return cloneUser(u), nil
}

func (s *UserMemory) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (s *UserMemory) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byUsername[username]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (s *UserMemory) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[user.ID]
	if !ok {
		return models.NewNotFoundError("User", user.ID)
	}

	// Uniqueness checks against everybody else; validation precedes any
	// index mutation so a failed update leaves no partial state.
	if other, exists := s.byEmail[user.Email]; exists && other.ID != user.ID {
		return models.NewDuplicateIdentityError("User with this email already exists")
	}
	if other, exists := s.byUsername[user.Username]; exists && other.ID != user.ID {
		return models.NewDuplicateIdentityError("Username already taken")
	}

	delete(s.byEmail, current.Email)
	delete(s.byUsername, current.Username)

	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now()
	updated := cloneUser(user)

	*current = *updated
	s.byEmail[current.Email] = current
	s.byUsername[current.Username] = current
	return nil
}

func (s *UserMemory) Search(_ context.Context, query string, limit int) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = SearchLimit
	}

	needle := strings.ToLower(query)
	results := make([]models.User, 0, limit)
	for _, u := range s.users {
		if !strings.Contains(strings.ToLower(u.Username), needle) {
			continue
		}
		results = append(results, *cloneUser(u))
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (s *UserMemory) List(_ context.Context, limit, offset int) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.users) {
		return []models.User{}, nil
	}
	end := len(s.users)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	results := make([]models.User, 0, end-offset)
	for _, u := range s.users[offset:end] {
		results = append(results, *cloneUser(u))
	}
	return results, nil
}

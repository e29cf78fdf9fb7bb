package store

import (
	"context"
	"sync"

	"connecthub/internal/models"
)

// FollowMemory is the in-memory FollowStore. Forward and reverse indexes are
// kept in lockstep under one mutex so enumeration never sees a half-toggled
// edge.
type FollowMemory struct {
	mu        sync.RWMutex
	following map[uint]map[uint]struct{} // follower -> set of followed ids
	followers map[uint]map[uint]struct{} // followed -> set of follower ids
}

// NewFollowMemory returns an empty in-memory follow store.
func NewFollowMemory() *FollowMemory {
	return &FollowMemory{
		following: make(map[uint]map[uint]struct{}),
		followers: make(map[uint]map[uint]struct{}),
	}
}

func (s *FollowMemory) Toggle(_ context.Context, followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, models.NewInvalidOperationError("Cannot follow yourself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.following[followerID][followingID]; exists {
		delete(s.following[followerID], followingID)
		delete(s.followers[followingID], followerID)
		return false, nil
	}

	if s.following[followerID] == nil {
		s.following[followerID] = make(map[uint]struct{})
	}
	if s.followers[followingID] == nil {
		s.followers[followingID] = make(map[uint]struct{})
	}
	s.following[followerID][followingID] = struct{}{}
	s.followers[followingID][followerID] = struct{}{}
	return true, nil
}

func (s *FollowMemory) IsFollowing(_ context.Context, followerID, followingID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.following[followerID][followingID]
	return exists, nil
}

func (s *FollowMemory) FollowerIDs(_ context.Context, userID uint) ([]uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return idSet(s.followers[userID]), nil
}

func (s *FollowMemory) FollowingIDs(_ context.Context, userID uint) ([]uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return idSet(s.following[userID]), nil
}

func idSet(m map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

package service

import (
	"context"

	"connecthub/internal/models"
	"connecthub/internal/store"
)

type FollowService struct {
	follows store.FollowStore
	users   store.UserStore
}

func NewFollowService(follows store.FollowStore, users store.UserStore) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Toggle flips the follow edge from followerID to targetID and returns the
// new state. The target must exist; following a ghost is a NOT_FOUND.
func (s *FollowService) Toggle(ctx context.Context, followerID, targetID uint) (bool, error) {
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return false, err
	}
	return s.follows.Toggle(ctx, followerID, targetID)
}

func (s *FollowService) Status(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, targetID)
}

// Followers returns the profiles of users following userID. Ids whose user
// record has since vanished are skipped rather than failing the listing.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.Profile, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveProfiles(ctx, ids)
}

// Following returns the profiles of users userID follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.Profile, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveProfiles(ctx, ids)
}

func (s *FollowService) resolveProfiles(ctx context.Context, ids []uint) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if models.HasCode(err, models.CodeNotFound) {
				continue
			}
			return nil, err
		}
		profiles = append(profiles, user.Profile())
	}
	return profiles, nil
}

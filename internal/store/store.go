// Package store defines the data-access contracts for ConnectHub's entity
// stores and provides the in-memory implementation. Each entity kind has
// exactly one store owning its collection; implementations must make every
// operation atomic (commit-or-not) with no partial state visible to
// concurrent callers.
package store

import (
	"context"

	"connecthub/internal/models"
)

// SearchLimit caps user and post substring searches.
const SearchLimit = 10

// UserStore holds identity records.
type UserStore interface {
	// Create persists a new user, failing with a DUPLICATE_IDENTITY error
	// when the email or username is already taken.
	Create(ctx context.Context, user *models.User) error
	// GetByID fails with NOT_FOUND when the id is unknown.
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByUsername returns (nil, nil) when no user has the username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// Search matches usernames case-insensitively against the substring,
	// capped at limit results, earliest-registered first on ties.
	Search(ctx context.Context, query string, limit int) ([]models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// FollowStore holds the directed follow edges of the social graph.
type FollowStore interface {
	// Toggle flips the (follower, following) edge and returns the new
	// state: true when the edge now exists. Self-follow fails with an
	// INVALID_OPERATION error.
	Toggle(ctx context.Context, followerID, followingID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	// FollowerIDs returns the ids of users following userID, unordered.
	FollowerIDs(ctx context.Context, userID uint) ([]uint, error)
	// FollowingIDs returns the ids of users userID follows, unordered.
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

// PostStore holds posts together with their embedded like-sets and comment
// lists. The currentUserID parameter, when non-zero, selects whose Liked
// flag is computed on reads.
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	// GetByID fails with NOT_FOUND when the post is absent.
	GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error)
	// List returns the global feed, newest first.
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	// ListByAuthor returns the author's posts, newest first.
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	// Search matches post content case-insensitively, newest first,
	// capped at limit results.
	Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error)
	// Delete removes the post with its likes and comments. Ownership is
	// the caller's check; the store only reports NOT_FOUND.
	Delete(ctx context.Context, id uint) error
	// ToggleLike flips userID's membership in the post's like-set and
	// returns the new state together with the like count as of the flip.
	ToggleLike(ctx context.Context, postID, userID uint) (liked bool, likesCount int, err error)
	// AddComment appends to the post's comment list, failing with
	// NOT_FOUND when the post is absent.
	AddComment(ctx context.Context, comment *models.Comment) error
	// ListComments returns the post's comments ascending by creation
	// time, ties in insertion order.
	ListComments(ctx context.Context, postID uint) ([]*models.Comment, error)
}

// MessageStore holds direct messages.
type MessageStore interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	// Conversation returns every message between the unordered pair
	// {userA, userB}, in either direction, ascending by creation time.
	Conversation(ctx context.Context, userA, userB uint) ([]*models.ChatMessage, error)
}

// Stores bundles one store per entity kind.
type Stores struct {
	Users    UserStore
	Follows  FollowStore
	Posts    PostStore
	Messages MessageStore
}

// NewMemoryStores returns a Stores backed entirely by in-memory collections,
// each guarded by its own mutex.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:    NewUserMemory(),
		Follows:  NewFollowMemory(),
		Posts:    NewPostMemory(),
		Messages: NewMessageMemory(),
	}
}

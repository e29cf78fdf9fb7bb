package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix         = "user:%d"
	PostKeyPrefix         = "post:%d"
	ConversationKeyPrefix = "conversation:%d:%d"
)

const (
	UserTTL         = 5 * time.Minute
	PostTTL         = 30 * time.Minute
	ConversationTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// ConversationKey is order-insensitive so both participants share one entry.
func ConversationKey(userA, userB uint) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return fmt.Sprintf(ConversationKeyPrefix, userA, userB)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateConversation(ctx context.Context, userA, userB uint) {
	Invalidate(ctx, ConversationKey(userA, userB))
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetJSON_MissAndHit(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	var got cachedProfile
	found, err := GetJSON(ctx, UserKey(1), &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, UserKey(1), cachedProfile{ID: 1, Username: "alice"}, UserTTL))

	found, err = GetJSON(ctx, UserKey(1), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", got.Username)
}

func TestAside_FetchesOnceThenServesFromCache(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedProfile) func() error {
		return func() error {
			calls++
			*dest = cachedProfile{ID: 7, Username: "bob"}
			return nil
		}
	}

	var first cachedProfile
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, calls)

	var second cachedProfile
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, calls, "second read should be a cache hit")
	assert.Equal(t, first, second)
}

func TestAside_ExpiredEntryRefetches(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var dest cachedProfile
	fetch := func() error {
		calls++
		dest = cachedProfile{ID: 2, Username: "carol"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(2), &dest, time.Minute, fetch))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, UserKey(2), &dest, time.Minute, fetch))
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(3), cachedProfile{ID: 3}, PostTTL))
	InvalidatePost(ctx, 3)

	var got cachedProfile
	found, err := GetJSON(ctx, PostKey(3), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestConversationKey_OrderInsensitive(t *testing.T) {
	assert.Equal(t, ConversationKey(1, 2), ConversationKey(2, 1))
}

func TestNilClientIsNoOp(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedProfile
	found, err := GetJSON(ctx, UserKey(9), &got)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, UserKey(9), got, UserTTL))
}

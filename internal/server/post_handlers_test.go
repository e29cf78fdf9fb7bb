package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, app *fiber.App, token, content string) uint {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
		"content": content,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return uint(body["id"].(float64))
}

func TestCreatePost(t *testing.T) {
	_, app := newTestServer(t)
	token, userID := registerUser(t, app, "poster")

	t.Run("success", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
			"content": "hello world",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "hello world", body["content"])
		assert.Equal(t, float64(userID), body["user_id"])
		assert.Equal(t, float64(0), body["likes_count"])
	})

	t.Run("trims whitespace", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
			"content": "  padded  ",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "padded", body["content"])
	})

	t.Run("rejects empty content", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
			"content": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("enforces length limit in runes", func(t *testing.T) {
		// 280 multibyte runes are fine even though they exceed 280 bytes.
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
			"content": strings.Repeat("é", 280),
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
			"content": strings.Repeat("a", 281),
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("requires auth", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts", "", map[string]any{
			"content": "anonymous shout",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetPostsOrderingAndLikedFlag(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "chronicler")

	first := createPost(t, app, token, "first")
	second := createPost(t, app, token, "second")
	third := createPost(t, app, token, "third")

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", second), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("newest first with viewer liked flags", func(t *testing.T) {
		resp, posts := doJSONList(t, app, http.MethodGet, "/api/posts", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, posts, 3)

		assert.Equal(t, float64(third), posts[0]["id"])
		assert.Equal(t, float64(second), posts[1]["id"])
		assert.Equal(t, float64(first), posts[2]["id"])

		assert.Equal(t, false, posts[0]["liked"])
		assert.Equal(t, true, posts[1]["liked"])
		assert.Equal(t, float64(1), posts[1]["likes_count"])
	})

	t.Run("anonymous viewer sees no liked flags", func(t *testing.T) {
		resp, posts := doJSONList(t, app, http.MethodGet, "/api/posts", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, posts, 3)
		for _, p := range posts {
			assert.Equal(t, false, p["liked"])
		}
	})

	t.Run("pagination", func(t *testing.T) {
		resp, posts := doJSONList(t, app, http.MethodGet, "/api/posts?limit=1&offset=1", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, posts, 1)
		assert.Equal(t, float64(second), posts[0]["id"])
	})
}

func TestToggleLike(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "admirer")
	postID := createPost(t, app, token, "like me")

	path := fmt.Sprintf("/api/posts/%d/like", postID)

	resp, body := doJSON(t, app, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(1), body["likes_count"])

	resp, body = doJSON(t, app, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(0), body["likes_count"])

	t.Run("missing post", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/999/like", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestComments(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "discussant")
	postID := createPost(t, app, token, "discuss")

	path := fmt.Sprintf("/api/posts/%d/comments", postID)

	t.Run("create and list ascending", func(t *testing.T) {
		for _, content := range []string{"first reply", "second reply"} {
			resp, body := doJSON(t, app, http.MethodPost, path, token, map[string]any{
				"content": content,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			assert.Equal(t, content, body["content"])
		}

		resp, comments := doJSONList(t, app, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, comments, 2)
		assert.Equal(t, "first reply", comments[0]["content"])
		assert.Equal(t, "second reply", comments[1]["content"])
	})

	t.Run("rejects empty comment", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, path, token, map[string]any{
			"content": "",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects oversized comment", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, path, token, map[string]any{
			"content": strings.Repeat("x", 1001),
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing post", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/999/comments", token, map[string]any{
			"content": "into the void",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, "/api/posts/999/comments", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	_, app := newTestServer(t)
	ownerToken, _ := registerUser(t, app, "owner")
	strangerToken, _ := registerUser(t, app, "stranger")
	postID := createPost(t, app, ownerToken, "mine to delete")

	path := fmt.Sprintf("/api/posts/%d", postID)

	t.Run("non-owner forbidden", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, path, strangerToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner deletes", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, path, ownerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("double delete reports not found, not forbidden", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, path, strangerToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSearchPosts(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "archivist")
	createPost(t, app, token, "Gophers assemble")
	createPost(t, app, token, "nothing to see")

	t.Run("matches content case-insensitively", func(t *testing.T) {
		resp, posts := doJSONList(t, app, http.MethodGet, "/api/posts/search?q=gopher", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, posts, 1)
		assert.Equal(t, "Gophers assemble", posts[0]["content"])
	})

	t.Run("empty query rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/posts/search", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetUserPosts(t *testing.T) {
	_, app := newTestServer(t)
	token, userID := registerUser(t, app, "author")
	otherToken, _ := registerUser(t, app, "bystander")
	createPost(t, app, token, "alpha")
	createPost(t, app, token, "beta")
	createPost(t, app, otherToken, "not mine")

	resp, posts := doJSONList(t, app, http.MethodGet,
		fmt.Sprintf("/api/users/%d/posts", userID), token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, posts, 2)
	assert.Equal(t, "beta", posts[0]["content"])
	assert.Equal(t, "alpha", posts[1]["content"])
}

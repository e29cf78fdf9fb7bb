package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	_, app := newTestServer(t)
	aliceToken, aliceID := registerUser(t, app, "alice")
	_, bobID := registerUser(t, app, "bob")

	path := fmt.Sprintf("/api/chat/%d", bobID)

	t.Run("success", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, path, aliceToken, map[string]any{
			"content": "hey bob",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "hey bob", body["content"])
		assert.Equal(t, float64(aliceID), body["sender_id"])
		assert.Equal(t, float64(bobID), body["receiver_id"])
	})

	t.Run("self message rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/chat/%d", aliceID), aliceToken, map[string]any{
				"content": "note to self",
			})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/chat/999", aliceToken, map[string]any{
			"content": "anyone there?",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, path, aliceToken, map[string]any{
			"content": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("oversized content rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, path, aliceToken, map[string]any{
			"content": strings.Repeat("x", 2001),
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetConversation(t *testing.T) {
	_, app := newTestServer(t)
	aliceToken, aliceID := registerUser(t, app, "alice")
	bobToken, bobID := registerUser(t, app, "bob")
	carolToken, _ := registerUser(t, app, "carol")

	send := func(token string, to uint, content string) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/chat/%d", to), token, map[string]any{"content": content})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	send(aliceToken, bobID, "hi bob")
	send(bobToken, aliceID, "hi alice")
	send(aliceToken, bobID, "how are you?")
	send(carolToken, bobID, "unrelated")

	t.Run("both directions ascending with ownership", func(t *testing.T) {
		resp, messages := doJSONList(t, app, http.MethodGet,
			fmt.Sprintf("/api/chat/%d", bobID), aliceToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, messages, 3)

		assert.Equal(t, "hi bob", messages[0]["content"])
		assert.Equal(t, "hi alice", messages[1]["content"])
		assert.Equal(t, "how are you?", messages[2]["content"])

		assert.Equal(t, true, messages[0]["is_own"])
		assert.Equal(t, false, messages[1]["is_own"])
		assert.Equal(t, "alice", messages[0]["sender_username"])
		assert.Equal(t, "bob", messages[1]["sender_username"])
	})

	t.Run("same thread from the other side", func(t *testing.T) {
		resp, messages := doJSONList(t, app, http.MethodGet,
			fmt.Sprintf("/api/chat/%d", aliceID), bobToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, messages, 3)
		assert.Equal(t, false, messages[0]["is_own"])
		assert.Equal(t, true, messages[1]["is_own"])
	})

	t.Run("empty thread", func(t *testing.T) {
		resp, messages := doJSONList(t, app, http.MethodGet,
			fmt.Sprintf("/api/chat/%d", aliceID), carolToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, messages)
	})

	t.Run("unknown participant", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/chat/999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageEndpoints(t *testing.T) {
	_, app := setupTestServer(t)
	_, authorToken := signupAndLogin(t, app, "author", "author@test.com")
	_, fanToken := signupAndLogin(t, app, "fan", "fan@test.com")

	var messageID uint

	t.Run("create", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/messages/", authorToken, map[string]string{
			"text": "Hello",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Hello", body["text"])
		messageID = uint(body["id"].(float64))
	})

	t.Run("create rejects bad text", func(t *testing.T) {
		for _, text := range []string{"", strings.Repeat("x", 141)} {
			resp, _ := doJSON(t, app, http.MethodPost, "/api/messages/", authorToken, map[string]string{
				"text": text,
			})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		}
	})

	t.Run("get by id includes the author", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/messages/%d", messageID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		user := body["user"].(map[string]any)
		assert.Equal(t, "author", user["username"])
	})

	t.Run("like by another user", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/messages/%d/like", messageID), fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		likers := listUsers(t, app, fmt.Sprintf("/api/messages/%d/likes", messageID))
		require.Len(t, likers, 1)
		assert.Equal(t, "fan", likers[0].Username)
	})

	t.Run("liking twice keeps one like", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/messages/%d/like", messageID), fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, listUsers(t, app, fmt.Sprintf("/api/messages/%d/likes", messageID)), 1)
	})

	t.Run("author cannot like their own message", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/messages/%d/like", messageID), authorToken, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unlike removes the like", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/messages/%d/like", messageID), fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, listUsers(t, app, fmt.Sprintf("/api/messages/%d/likes", messageID)))
	})

	t.Run("only the author can delete", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/messages/%d", messageID), fanToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/messages/%d", messageID), authorToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/messages/%d", messageID), "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("liking an unknown message is 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/messages/9999/like", fanToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileEndpoints(t *testing.T) {
	_, app := setupTestServer(t)
	id, token := signupAndLogin(t, app, "testuser", "test@test.com")

	t.Run("get profile by id", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", id), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "testuser", body["username"])
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/users/9999", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id is 400", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/users/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("own profile", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "testuser", body["username"])
	})

	t.Run("update profile", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
			"bio":      "warbling away",
			"location": "the treetops",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "warbling away", body["bio"])
		assert.Equal(t, "the treetops", body["location"])
	})
}

func TestDeleteAccountEndpoint(t *testing.T) {
	_, app := setupTestServer(t)
	doomedID, doomedToken := signupAndLogin(t, app, "doomed", "doomed@test.com")
	otherID, otherToken := signupAndLogin(t, app, "other", "other@test.com")

	// Build up a message, a like from the other user, and follows both ways.
	resp, msg := doJSON(t, app, http.MethodPost, "/api/messages/", doomedToken, map[string]string{
		"text": "soon gone",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	messageID := uint(msg["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/messages/%d/like", messageID), otherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", otherID), doomedToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", doomedID), otherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/users/me", doomedToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The account and everything it touched is gone.
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", doomedID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/messages/%d", messageID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/followers", otherID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

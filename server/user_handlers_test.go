package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/civiceye/civiceye/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndConflict(t *testing.T) {
	_, r, _ := newTestServer(t)

	payload := gin.H{
		"username": "sarah_martinez",
		"email":    "Sarah@Example.com",
		"password": "hunter22",
	}
	w, env := doJSON(t, r, http.MethodPost, "/api/users", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "sarah_martinez", user.Username)
	// Email is normalized to lower case.
	assert.Equal(t, "sarah@example.com", user.Email)
	assert.Equal(t, "Newcomer", user.Badge)
	assert.Zero(t, user.Points)

	// The hash never leaves the server.
	assert.NotContains(t, string(env.Data), "hashedPassword")

	w, _ = doJSON(t, r, http.MethodPost, "/api/users", payload, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupShortPasswordRejected(t *testing.T) {
	_, r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "emily",
		"email":    "emily@example.com",
		"password": "abc",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserNotFound(t *testing.T) {
	_, r, _ := newTestServer(t)
	w, _ := doJSON(t, r, http.MethodGet, "/api/users/424242", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboard(t *testing.T) {
	s, r, _ := newTestServer(t)

	seed := []struct {
		username string
		points   int
	}{
		{"junaid", 2847},
		{"sarah", 2156},
		{"emily", 1923},
		{"david", 847},
	}
	for _, u := range seed {
		_, err := s.UserRepository.CreateUser(&models.User{
			Username: u.username, Email: u.username + "@example.com", Points: u.points,
		})
		require.NoError(t, err)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/leaderboard?limit=3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board []models.User
	require.NoError(t, json.Unmarshal(env.Data, &board))
	require.Len(t, board, 3)
	assert.Equal(t, "junaid", board[0].Username)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Urban Guardian", board[0].Badge)
	assert.Equal(t, "sarah", board[1].Username)
	assert.Equal(t, "Community Hero", board[1].Badge)
	assert.Equal(t, "emily", board[2].Username)
	assert.Equal(t, "Civic Champion", board[2].Badge)

	// Reading the leaderboard twice changes nothing.
	_, env2 := doJSON(t, r, http.MethodGet, "/api/leaderboard?limit=3", nil, nil)
	assert.JSONEq(t, string(env.Data), string(env2.Data))
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"colorbet/internal/model"
)

func TestHandler_GetGameState(t *testing.T) {
	h, _, mockGame := newTestHandler(t)

	router := gin.New()
	router.GET("/api/game/state", h.GetGameState)

	winning := model.ColorBlue
	mockGame.On("GetGameState", mock.Anything).Return(&model.GameStateResponse{
		CurrentRound: &model.Round{
			ID:        1002,
			Status:    model.StatusBetting,
			StartTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		TimeLeft: 17,
		RecentRounds: []*model.Round{
			{ID: 1001, Status: model.StatusFinished, WinningColor: &winning},
		},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/game/state", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var state model.GameStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, int64(1002), state.CurrentRound.ID)
	assert.Equal(t, 17, state.TimeLeft)
	require.Len(t, state.RecentRounds, 1)
	assert.Equal(t, model.ColorBlue, *state.RecentRounds[0].WinningColor)
}

func TestHandler_GetUser_DefaultsToDemoUser(t *testing.T) {
	h, _, mockGame := newTestHandler(t)

	router := gin.New()
	router.GET("/api/user", h.GetUser)

	mockGame.On("GetUserOverview", mock.Anything, "Player123").Return(&model.UserResponse{
		User: &model.User{ID: "user-1", Username: "Player123", Balance: decimal.NewFromInt(1000)},
		Stats: &model.UserStats{
			GamesPlayed:   0,
			WinRate:       0,
			TotalWinnings: decimal.Zero,
			BiggestWin:    decimal.Zero,
			FavoriteColor: model.ColorRed,
		},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/user", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Player123", resp.User.Username)
	assert.Equal(t, model.ColorRed, resp.Stats.FavoriteColor)
}

func TestHandler_GetUser_QueryParamOverridesDemoUser(t *testing.T) {
	h, _, mockGame := newTestHandler(t)

	router := gin.New()
	router.GET("/api/user", h.GetUser)

	mockGame.On("GetUserOverview", mock.Anything, "alice").Return(&model.UserResponse{
		User:  &model.User{ID: "user-2", Username: "alice", Balance: decimal.NewFromInt(500)},
		Stats: &model.UserStats{FavoriteColor: model.ColorRed},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/user?username=alice", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	h, _, mockGame := newTestHandler(t)

	router := gin.New()
	router.GET("/api/user", h.GetUser)

	mockGame.On("GetUserOverview", mock.Anything, "ghost").Return(nil, model.ErrUserNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/api/user?username=ghost", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "USER_NOT_FOUND", resp.Code)
}

func TestHandler_GetUserCurrentBets(t *testing.T) {
	h, _, mockGame := newTestHandler(t)

	router := gin.New()
	router.GET("/api/user/bets/current", h.GetUserCurrentBets)

	mockGame.On("GetUserCurrentBets", mock.Anything, "Player123").Return([]*model.Bet{
		{ID: "bet-1", UserID: "user-1", RoundID: 1002, Color: model.ColorGreen, Amount: decimal.NewFromInt(25)},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/user/bets/current", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var bets []*model.Bet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bets))
	require.Len(t, bets, 1)
	assert.Equal(t, "bet-1", bets[0].ID)
}

func TestHandler_GetUserCurrentBets_EmptyIsArray(t *testing.T) {
	h, _, mockGame := newTestHandler(t)

	router := gin.New()
	router.GET("/api/user/bets/current", h.GetUserCurrentBets)

	mockGame.On("GetUserCurrentBets", mock.Anything, "Player123").Return([]*model.Bet{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/user/bets/current", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_HealthCheck(t *testing.T) {
	h, _, _ := newTestHandler(t)

	router := h.SetupRoutes()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

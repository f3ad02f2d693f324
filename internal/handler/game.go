package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetGameState
// @Summary Get current game state
// @Description Returns the current round, remaining betting time and recent results
// @Tags game
// @Produce json
// @Success 200 {object} model.GameStateResponse
// @Router /game/state [get]
func (h *Handler) GetGameState(c *gin.Context) {
	state, err := h.gameService.GetGameState(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetUser
// @Summary Get user and stats
// @Description Returns the user with aggregate betting statistics
// @Tags user
// @Produce json
// @Param username query string false "Username (defaults to the demo user)"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /user [get]
func (h *Handler) GetUser(c *gin.Context) {
	overview, err := h.gameService.GetUserOverview(c.Request.Context(), h.username(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetUserCurrentBets
// @Summary Get user bets for the current round
// @Tags user
// @Produce json
// @Param username query string false "Username (defaults to the demo user)"
// @Success 200 {array} model.Bet
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /user/bets/current [get]
func (h *Handler) GetUserCurrentBets(c *gin.Context) {
	bets, err := h.gameService.GetUserCurrentBets(c.Request.Context(), h.username(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bets)
}

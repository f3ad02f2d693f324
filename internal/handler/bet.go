package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"colorbet/internal/model"
)

// PlaceBet
// @Summary Place a bet on the current round
// @Description Places a color bet against the open betting round and reserves the stake
// @Tags bets
// @Accept json
// @Produce json
// @Param bet body model.PlaceBetRequest true "Bet details"
// @Success 201 {object} model.Bet "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Failure 409 {object} model.ErrorResponse "Betting closed"
// @Router /bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	var req model.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	bet, err := h.bettingService.PlaceBet(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bet)
}

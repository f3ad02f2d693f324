package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"colorbet/internal/model"
	"colorbet/internal/service"
)

type Handler struct {
	bettingService service.BettingService
	gameService    service.GameService
	demoUsername   string
	logger         zerolog.Logger
}

func NewHandler(betting service.BettingService, game service.GameService, demoUsername string, logger zerolog.Logger) *Handler {
	return &Handler{
		bettingService: betting,
		gameService:    game,
		demoUsername:   demoUsername,
		logger:         logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")

	game := api.Group("/game")
	game.GET("/state", h.GetGameState)

	user := api.Group("/user")
	user.GET("", h.GetUser)
	user.GET("/bets/current", h.GetUserCurrentBets)

	api.POST("/bets", h.PlaceBet)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrBettingClosed):
		status = http.StatusConflict
		code = "BETTING_CLOSED"
		resp.Details = "Wait for the next round to open"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrBetTooSmall):
		status = http.StatusBadRequest
		code = "BET_TOO_SMALL"
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrInvalidColor):
		status = http.StatusBadRequest
		code = "INVALID_COLOR"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrRoundNotFound):
		status = http.StatusNotFound
		code = "ROUND_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}

// username resolves the acting user: an explicit query parameter when
// present, otherwise the configured demo user.
func (h *Handler) username(c *gin.Context) string {
	if username := c.Query("username"); username != "" {
		return username
	}
	return h.demoUsername
}

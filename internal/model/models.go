package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Round struct {
	ID           int64       `json:"id"`
	Status       RoundStatus `json:"status"`
	WinningColor *Color      `json:"winningColor"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      *time.Time  `json:"endTime"`
	ResultTime   *time.Time  `json:"resultTime"`
}

type Bet struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	RoundID   int64            `json:"roundId"`
	Color     Color            `json:"color"`
	Amount    decimal.Decimal  `json:"amount"`
	IsWinner  *bool            `json:"isWinner"`
	WinAmount *decimal.Decimal `json:"winAmount"`
	CreatedAt time.Time        `json:"createdAt"`
}

type PlaceBetRequest struct {
	UserID string `json:"userId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Color  string `json:"color" binding:"required" example:"red" enums:"red,green,blue,purple,orange"`
	Amount string `json:"amount" binding:"required" example:"50.00"`
}

type GameStateResponse struct {
	CurrentRound *Round   `json:"currentRound"`
	TimeLeft     int      `json:"timeLeft"`
	RecentRounds []*Round `json:"recentRounds"`
}

// UserStats aggregates a user's settled bets.
type UserStats struct {
	GamesPlayed   int             `json:"gamesPlayed"`
	WinRate       float64         `json:"winRate"`
	TotalWinnings decimal.Decimal `json:"totalWinnings"`
	BiggestWin    decimal.Decimal `json:"biggestWin"`
	FavoriteColor Color           `json:"favoriteColor"`
}

type UserResponse struct {
	User  *User      `json:"user"`
	Stats *UserStats `json:"stats"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"colorbet/internal/model"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository defines operations for user/balance management
type UserRepository interface {
	// GetUser retrieves a user by id
	GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error)

	// GetUserByUsername retrieves a user by its unique username
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// CreateUser inserts a new user with the given starting balance
	CreateUser(ctx context.Context, username string, balance decimal.Decimal) (*model.User, error)

	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error)

	// UpdateBalance updates user balance
	UpdateBalance(ctx context.Context, userID string, balance decimal.Decimal, tx pgx.Tx) error
}

// RoundRepository defines operations for the round lifecycle
type RoundRepository interface {
	// GetCurrentRound retrieves the round with the highest id regardless of status
	GetCurrentRound(ctx context.Context) (*model.Round, error)

	// CreateRound inserts a new round in status betting
	CreateRound(ctx context.Context, startTime time.Time) (*model.Round, error)

	// CloseRound moves a round from betting to closed; returns false if the
	// round was not in status betting
	CloseRound(ctx context.Context, roundID int64, endTime time.Time) (bool, error)

	// FinishRound moves a round from closed to finished and records the
	// winning color; returns false if the round was not in status closed
	FinishRound(ctx context.Context, roundID int64, winningColor model.Color, resultTime time.Time) (bool, error)

	// GetRecentRounds retrieves the latest finished rounds, newest first
	GetRecentRounds(ctx context.Context, limit int) ([]*model.Round, error)
}

// BetRepository defines operations for bet placement and settlement
type BetRepository interface {
	// InsertBet creates a new bet record (must be in transaction)
	InsertBet(ctx context.Context, bet *model.Bet, tx pgx.Tx) error

	// GetUnsettledRoundBets retrieves the round's bets that have no outcome yet
	GetUnsettledRoundBets(ctx context.Context, roundID int64) ([]*model.Bet, error)

	// GetUserRoundBets retrieves a user's bets for a round
	GetUserRoundBets(ctx context.Context, userID string, roundID int64) ([]*model.Bet, error)

	// GetSettledUserBets retrieves all of a user's settled bets
	GetSettledUserBets(ctx context.Context, userID string) ([]*model.Bet, error)

	// LockBetForSettlement locks a bet row for settlement if it's still unsettled
	LockBetForSettlement(ctx context.Context, betID string, tx pgx.Tx) (bool, error)

	// SettleBet records a bet's outcome if it is still unsettled
	SettleBet(ctx context.Context, betID string, isWinner bool, winAmount decimal.Decimal, tx pgx.Tx) (bool, error)
}

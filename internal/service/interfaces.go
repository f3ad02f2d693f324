package service

import (
	"context"

	"colorbet/internal/model"
)

// BettingService defines the business logic for admitting bet placements
type BettingService interface {
	PlaceBet(ctx context.Context, req *model.PlaceBetRequest) (*model.Bet, error)
}

// SettlementService defines the business logic for resolving a finished
// round's bets against the winning color
type SettlementService interface {
	// SettleRound settles every unsettled bet of the round, exactly once per bet
	SettleRound(ctx context.Context, roundID int64, winningColor model.Color) error
}

// RoundService advances the round lifecycle state machine. It is driven by
// the scheduler on every tick.
type RoundService interface {
	Advance(ctx context.Context) error
}

// GameService defines the read-only queries consumed by the presentation layer
type GameService interface {
	GetGameState(ctx context.Context) (*model.GameStateResponse, error)
	GetUserOverview(ctx context.Context, username string) (*model.UserResponse, error)
	GetUserCurrentBets(ctx context.Context, username string) ([]*model.Bet, error)

	// EnsureUser returns the user with the given username, creating it with
	// the configured starting balance when missing
	EnsureUser(ctx context.Context, username string) (*model.User, error)
}

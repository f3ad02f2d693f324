package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"colorbet/internal/config"
	"colorbet/internal/model"
	"colorbet/internal/repository"
)

type BettingServiceImpl struct {
	userRepo  repository.UserRepository
	roundRepo repository.RoundRepository
	betRepo   repository.BetRepository
	dbManager repository.DBManager
	cfg       config.GameConfig
	logger    zerolog.Logger
}

func NewBettingService(
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	betRepo repository.BetRepository,
	dbManager repository.DBManager,
	cfg config.GameConfig,
	logger zerolog.Logger,
) BettingService {
	return &BettingServiceImpl{
		userRepo:  userRepo,
		roundRepo: roundRepo,
		betRepo:   betRepo,
		dbManager: dbManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// PlaceBet admits a bet against the current round. The stake is debited
// from the user's balance in the same transaction that creates the bet, so
// concurrent bets can never jointly exceed the real balance.
func (s *BettingServiceImpl) PlaceBet(ctx context.Context, req *model.PlaceBetRequest) (*model.Bet, error) {
	// Validate the amount shape early, before transaction and locks
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	round, err := s.roundRepo.GetCurrentRound(ctx)
	if err != nil {
		if errors.Is(err, model.ErrRoundNotFound) {
			return nil, model.ErrBettingClosed
		}
		return nil, fmt.Errorf("get current round: %w", err)
	}

	if round.Status != model.StatusBetting {
		return nil, model.ErrBettingClosed
	}

	var bet *model.Bet

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		user, err := s.userRepo.GetUserForUpdate(ctx, req.UserID, tx)
		if err != nil {
			return err
		}

		if amount.LessThan(s.cfg.MinBet) {
			return fmt.Errorf("%w: minimum is %s", model.ErrBetTooSmall, s.cfg.MinBet.StringFixed(2))
		}

		if amount.GreaterThan(user.Balance) {
			return model.ErrInsufficientBalance
		}

		color, err := model.ParseColor(req.Color)
		if err != nil {
			return err
		}

		// Reserve the stake now; settlement credits winnings later
		newBalance := user.Balance.Sub(amount)
		if err := s.userRepo.UpdateBalance(ctx, user.ID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		bet = &model.Bet{
			ID:      uuid.New().String(),
			UserID:  user.ID,
			RoundID: round.ID,
			Color:   color,
			Amount:  amount,
		}

		if err := s.betRepo.InsertBet(ctx, bet, tx); err != nil {
			return fmt.Errorf("insert bet: %w", err)
		}

		s.logger.Info().
			Str("bet_id", bet.ID).
			Str("user_id", user.ID).
			Int64("round_id", round.ID).
			Str("color", color.String()).
			Str("amount", amount.StringFixed(2)).
			Str("new_balance", newBalance.StringFixed(2)).
			Msg("bet placed")

		return nil
	})

	if err != nil {
		return nil, err
	}

	return bet, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"colorbet/internal/config"
	"colorbet/internal/model"
	"colorbet/internal/repository"
)

type SettlementServiceImpl struct {
	userRepo  repository.UserRepository
	betRepo   repository.BetRepository
	dbManager repository.DBManager
	cfg       config.GameConfig
	logger    zerolog.Logger
}

func NewSettlementService(
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	dbManager repository.DBManager,
	cfg config.GameConfig,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		userRepo:  userRepo,
		betRepo:   betRepo,
		dbManager: dbManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// SettleRound resolves every unsettled bet of the round against the winning
// color. Each bet is settled in its own transaction: the outcome write and
// the balance credit commit as one unit, and a failed bet does not block its
// siblings. Re-invocation is a no-op since only bets with a NULL outcome are
// touched.
func (s *SettlementServiceImpl) SettleRound(ctx context.Context, roundID int64, winningColor model.Color) error {
	bets, err := s.betRepo.GetUnsettledRoundBets(ctx, roundID)
	if err != nil {
		return fmt.Errorf("get unsettled bets: %w", err)
	}

	if len(bets) == 0 {
		s.logger.Debug().Int64("round_id", roundID).Msg("no bets to settle")
		return nil
	}

	var settledCount, failedCount int

	for _, bet := range bets {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := s.settleBet(ctx, bet, winningColor)
		if err != nil {
			failedCount++
			s.logger.Error().
				Err(err).
				Str("bet_id", bet.ID).
				Str("user_id", bet.UserID).
				Int64("round_id", roundID).
				Msg("failed to settle bet")
			continue
		}
		settledCount++
	}

	s.logger.Info().
		Int64("round_id", roundID).
		Str("winning_color", winningColor.String()).
		Int("bets", len(bets)).
		Int("settled", settledCount).
		Int("failed", failedCount).
		Msg("round settlement completed")

	return nil
}

func (s *SettlementServiceImpl) settleBet(ctx context.Context, bet *model.Bet, winningColor model.Color) error {
	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Lock the bet row to avoid duplicate settlement under concurrency
		locked, err := s.betRepo.LockBetForSettlement(ctx, bet.ID, tx)
		if err != nil {
			return fmt.Errorf("lock bet for settlement: %w", err)
		}
		if !locked {
			s.logger.Debug().Str("bet_id", bet.ID).Msg("bet already claimed or settled")
			return nil
		}

		isWinner := bet.Color == winningColor
		winAmount := decimal.Zero
		if isWinner {
			winAmount = bet.Amount.Mul(s.cfg.PayoutMultiplier)
		}

		// The stake was debited at placement, so only winners move the balance
		if isWinner {
			user, err := s.userRepo.GetUserForUpdate(ctx, bet.UserID, tx)
			switch {
			case errors.Is(err, model.ErrUserNotFound):
				// Record the outcome anyway; the missing payout is reported
				s.logger.Warn().
					Str("bet_id", bet.ID).
					Str("user_id", bet.UserID).
					Str("win_amount", winAmount.StringFixed(2)).
					Msg("bet owner missing, outcome recorded without payout")
			case err != nil:
				return fmt.Errorf("get user for update: %w", err)
			default:
				newBalance := user.Balance.Add(winAmount)
				if err := s.userRepo.UpdateBalance(ctx, user.ID, newBalance, tx); err != nil {
					return fmt.Errorf("update balance: %w", err)
				}
			}
		}

		updated, err := s.betRepo.SettleBet(ctx, bet.ID, isWinner, winAmount, tx)
		if err != nil {
			return fmt.Errorf("settle bet: %w", err)
		}
		if !updated {
			s.logger.Warn().Str("bet_id", bet.ID).Msg("bet outcome not updated - may have been settled concurrently")
			return nil
		}

		s.logger.Info().
			Str("bet_id", bet.ID).
			Str("user_id", bet.UserID).
			Bool("is_winner", isWinner).
			Str("amount", bet.Amount.StringFixed(2)).
			Str("win_amount", winAmount.StringFixed(2)).
			Msg("bet settled")

		return nil
	})
}

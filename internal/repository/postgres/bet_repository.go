package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"colorbet/internal/model"
	"colorbet/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BetRepository = (*BetRepositoryImpl)(nil)

// BetRepositoryImpl is the PostgreSQL implementation of BetRepository
type BetRepositoryImpl struct {
	*TransactionManager
}

func NewBetRepository(pool *pgxpool.Pool) repository.BetRepository {
	return &BetRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const betColumns = `id, user_id, round_id, color, amount, is_winner, win_amount, created_at`

func scanBet(row pgx.Row) (*model.Bet, error) {
	bet := &model.Bet{}
	err := row.Scan(&bet.ID, &bet.UserID, &bet.RoundID, &bet.Color, &bet.Amount, &bet.IsWinner, &bet.WinAmount, &bet.CreatedAt)
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// InsertBet creates a new bet record with no outcome yet
func (r *BetRepositoryImpl) InsertBet(ctx context.Context, bet *model.Bet, tx pgx.Tx) error {
	query := `
        INSERT INTO bets (id, user_id, round_id, color, amount)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, bet.ID, bet.UserID, bet.RoundID, bet.Color, bet.Amount).
		Scan(&bet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

// GetUnsettledRoundBets retrieves the round's bets that have no outcome yet
func (r *BetRepositoryImpl) GetUnsettledRoundBets(ctx context.Context, roundID int64) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE round_id = $1 AND is_winner IS NULL`

	return r.queryBets(ctx, query, roundID)
}

// GetUserRoundBets retrieves a user's bets for a round
func (r *BetRepositoryImpl) GetUserRoundBets(ctx context.Context, userID string, roundID int64) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE user_id = $1 AND round_id = $2
        ORDER BY created_at`

	return r.queryBets(ctx, query, userID, roundID)
}

// GetSettledUserBets retrieves all of a user's settled bets
func (r *BetRepositoryImpl) GetSettledUserBets(ctx context.Context, userID string) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE user_id = $1 AND is_winner IS NOT NULL`

	return r.queryBets(ctx, query, userID)
}

func (r *BetRepositoryImpl) queryBets(ctx context.Context, query string, args ...any) ([]*model.Bet, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

// LockBetForSettlement locks a bet row for settlement if it's still unsettled
func (r *BetRepositoryImpl) LockBetForSettlement(ctx context.Context, betID string, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM bets WHERE id = $1 AND is_winner IS NULL FOR UPDATE SKIP LOCKED`

	var lockedID string
	err := tx.QueryRow(ctx, query, betID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock bet for settlement: %w", err)
	}
	return true, nil
}

// SettleBet records a bet's outcome, only if no outcome was recorded before
func (r *BetRepositoryImpl) SettleBet(ctx context.Context, betID string, isWinner bool, winAmount decimal.Decimal, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE bets
        SET is_winner = $1, win_amount = $2
        WHERE id = $3 AND is_winner IS NULL`

	result, err := tx.Exec(ctx, query, isWinner, winAmount, betID)
	if err != nil {
		return false, fmt.Errorf("failed to settle bet: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

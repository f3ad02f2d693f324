package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"colorbet/internal/model"
	"colorbet/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.RoundRepository = (*RoundRepositoryImpl)(nil)

// RoundRepositoryImpl is the PostgreSQL implementation of RoundRepository
type RoundRepositoryImpl struct {
	*TransactionManager
}

func NewRoundRepository(pool *pgxpool.Pool) repository.RoundRepository {
	return &RoundRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetCurrentRound retrieves the round with the highest id regardless of status
func (r *RoundRepositoryImpl) GetCurrentRound(ctx context.Context) (*model.Round, error) {
	query := `
        SELECT id, status, winning_color, start_time, end_time, result_time
        FROM game_rounds
        ORDER BY id DESC
        LIMIT 1`

	round := &model.Round{}
	err := r.pool.QueryRow(ctx, query).
		Scan(&round.ID, &round.Status, &round.WinningColor, &round.StartTime, &round.EndTime, &round.ResultTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get current round: %w", err)
	}
	return round, nil
}

// CreateRound inserts a new round in status betting
func (r *RoundRepositoryImpl) CreateRound(ctx context.Context, startTime time.Time) (*model.Round, error) {
	query := `
        INSERT INTO game_rounds (status, start_time)
        VALUES ($1, $2)
        RETURNING id`

	round := &model.Round{
		Status:    model.StatusBetting,
		StartTime: startTime,
	}
	err := r.pool.QueryRow(ctx, query, model.StatusBetting, startTime).Scan(&round.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	return round, nil
}

// CloseRound moves a round from betting to closed. The status guard keeps
// the transition forward-only under concurrent ticks.
func (r *RoundRepositoryImpl) CloseRound(ctx context.Context, roundID int64, endTime time.Time) (bool, error) {
	query := `
        UPDATE game_rounds
        SET status = $1, end_time = $2
        WHERE id = $3 AND status = $4`

	result, err := r.pool.Exec(ctx, query, model.StatusClosed, endTime, roundID, model.StatusBetting)
	if err != nil {
		return false, fmt.Errorf("failed to close round: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// FinishRound moves a round from closed to finished and records the winning
// color. This is the single commit point gating settlement re-entry.
func (r *RoundRepositoryImpl) FinishRound(ctx context.Context, roundID int64, winningColor model.Color, resultTime time.Time) (bool, error) {
	query := `
        UPDATE game_rounds
        SET status = $1, winning_color = $2, result_time = $3
        WHERE id = $4 AND status = $5`

	result, err := r.pool.Exec(ctx, query, model.StatusFinished, winningColor, resultTime, roundID, model.StatusClosed)
	if err != nil {
		return false, fmt.Errorf("failed to finish round: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// GetRecentRounds retrieves the latest finished rounds, newest first
func (r *RoundRepositoryImpl) GetRecentRounds(ctx context.Context, limit int) ([]*model.Round, error) {
	query := `
        SELECT id, status, winning_color, start_time, end_time, result_time
        FROM game_rounds
        WHERE status = $1
        ORDER BY id DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, model.StatusFinished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*model.Round
	for rows.Next() {
		round := &model.Round{}
		if err := rows.Scan(&round.ID, &round.Status, &round.WinningColor, &round.StartTime, &round.EndTime, &round.ResultTime); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

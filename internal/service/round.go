package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"colorbet/internal/config"
	"colorbet/internal/model"
	"colorbet/internal/repository"
)

// RoundServiceImpl is the round lifecycle state machine. Advance recomputes
// what should happen from absolute timestamps on every call, so a late or
// skipped tick catches up on the next one and a restarted process resumes
// where the stored round left off.
type RoundServiceImpl struct {
	roundRepo  repository.RoundRepository
	settlement SettlementService
	cfg        config.GameConfig
	logger     zerolog.Logger

	// injected for tests
	now       func() time.Time
	pickColor func() model.Color
}

func NewRoundService(
	roundRepo repository.RoundRepository,
	settlement SettlementService,
	cfg config.GameConfig,
	logger zerolog.Logger,
) RoundService {
	return &RoundServiceImpl{
		roundRepo:  roundRepo,
		settlement: settlement,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		pickColor:  randomColor,
	}
}

// randomColor draws uniformly from the color enumeration.
func randomColor() model.Color {
	return model.Colors[rand.Intn(len(model.Colors))]
}

func (s *RoundServiceImpl) Advance(ctx context.Context) error {
	round, err := s.roundRepo.GetCurrentRound(ctx)
	if err != nil {
		if errors.Is(err, model.ErrRoundNotFound) {
			return s.startRound(ctx)
		}
		return fmt.Errorf("get current round: %w", err)
	}

	now := s.now()

	switch round.Status {
	case model.StatusBetting:
		if now.Sub(round.StartTime) >= s.cfg.BettingWindow {
			return s.closeRound(ctx, round, now)
		}
	case model.StatusClosed:
		// A closed round without an end time resolves immediately
		if round.EndTime == nil || now.Sub(*round.EndTime) >= s.cfg.ResolveDelay {
			return s.resolveRound(ctx, round, now)
		}
	case model.StatusFinished:
		if round.ResultTime == nil || now.Sub(*round.ResultTime) >= s.cfg.NextRoundDelay {
			return s.startRound(ctx)
		}
	}

	return nil
}

func (s *RoundServiceImpl) startRound(ctx context.Context) error {
	round, err := s.roundRepo.CreateRound(ctx, s.now())
	if err != nil {
		return fmt.Errorf("create round: %w", err)
	}

	s.logger.Info().Int64("round_id", round.ID).Msg("betting round started")
	return nil
}

func (s *RoundServiceImpl) closeRound(ctx context.Context, round *model.Round, now time.Time) error {
	closed, err := s.roundRepo.CloseRound(ctx, round.ID, now)
	if err != nil {
		return fmt.Errorf("close round: %w", err)
	}
	if !closed {
		s.logger.Debug().Int64("round_id", round.ID).Msg("round no longer in betting, skipping close")
		return nil
	}

	s.logger.Info().Int64("round_id", round.ID).Msg("betting closed")
	return nil
}

func (s *RoundServiceImpl) resolveRound(ctx context.Context, round *model.Round, now time.Time) error {
	winningColor := s.pickColor()

	// The status-guarded finish is the single commit point: once it has
	// flipped, no second draw or settlement pass can happen for this round.
	finished, err := s.roundRepo.FinishRound(ctx, round.ID, winningColor, now)
	if err != nil {
		return fmt.Errorf("finish round: %w", err)
	}
	if !finished {
		s.logger.Debug().Int64("round_id", round.ID).Msg("round no longer closed, skipping resolution")
		return nil
	}

	s.logger.Info().
		Int64("round_id", round.ID).
		Str("winning_color", winningColor.String()).
		Msg("round finished")

	if err := s.settlement.SettleRound(ctx, round.ID, winningColor); err != nil {
		return fmt.Errorf("settle round %d: %w", round.ID, err)
	}

	return nil
}

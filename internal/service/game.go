package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"colorbet/internal/config"
	"colorbet/internal/model"
	"colorbet/internal/repository"
)

// GameServiceImpl is the read-only query side of the game. It never mutates
// rounds, bets or balances, with the one exception of EnsureUser which seeds
// the demo user at startup.
type GameServiceImpl struct {
	userRepo  repository.UserRepository
	roundRepo repository.RoundRepository
	betRepo   repository.BetRepository
	cfg       config.GameConfig
	logger    zerolog.Logger

	now func() time.Time
}

func NewGameService(
	userRepo repository.UserRepository,
	roundRepo repository.RoundRepository,
	betRepo repository.BetRepository,
	cfg config.GameConfig,
	logger zerolog.Logger,
) GameService {
	return &GameServiceImpl{
		userRepo:  userRepo,
		roundRepo: roundRepo,
		betRepo:   betRepo,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *GameServiceImpl) GetGameState(ctx context.Context) (*model.GameStateResponse, error) {
	round, err := s.roundRepo.GetCurrentRound(ctx)
	if err != nil && !errors.Is(err, model.ErrRoundNotFound) {
		return nil, fmt.Errorf("get current round: %w", err)
	}

	timeLeft := 0
	if round != nil && round.Status == model.StatusBetting {
		remaining := s.cfg.BettingWindow - s.now().Sub(round.StartTime)
		if remaining > 0 {
			timeLeft = int(math.Ceil(remaining.Seconds()))
		}
	}

	recent, err := s.roundRepo.GetRecentRounds(ctx, s.cfg.RecentRoundsLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent rounds: %w", err)
	}
	if recent == nil {
		recent = []*model.Round{}
	}

	return &model.GameStateResponse{
		CurrentRound: round,
		TimeLeft:     timeLeft,
		RecentRounds: recent,
	}, nil
}

func (s *GameServiceImpl) GetUserOverview(ctx context.Context, username string) (*model.UserResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	bets, err := s.betRepo.GetSettledUserBets(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get settled bets: %w", err)
	}

	return &model.UserResponse{
		User:  user,
		Stats: computeStats(bets),
	}, nil
}

func (s *GameServiceImpl) GetUserCurrentBets(ctx context.Context, username string) ([]*model.Bet, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	round, err := s.roundRepo.GetCurrentRound(ctx)
	if err != nil {
		if errors.Is(err, model.ErrRoundNotFound) {
			return []*model.Bet{}, nil
		}
		return nil, fmt.Errorf("get current round: %w", err)
	}

	bets, err := s.betRepo.GetUserRoundBets(ctx, user.ID, round.ID)
	if err != nil {
		return nil, fmt.Errorf("get user round bets: %w", err)
	}
	if bets == nil {
		bets = []*model.Bet{}
	}
	return bets, nil
}

func (s *GameServiceImpl) EnsureUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	user, err = s.userRepo.CreateUser(ctx, username, s.cfg.InitialBalance)
	if err != nil {
		// Lost a create race; the user exists now
		if errors.Is(err, model.ErrDuplicateUsername) {
			return s.userRepo.GetUserByUsername(ctx, username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("username", username).
		Str("balance", user.Balance.StringFixed(2)).
		Msg("user created")

	return user, nil
}

// computeStats aggregates settled bets. Favorite-color ties resolve to the
// earliest color in enumeration order.
func computeStats(bets []*model.Bet) *model.UserStats {
	gamesPlayed := len(bets)

	var winningCount int
	totalWinnings := decimal.Zero
	biggestWin := decimal.Zero
	colorCounts := make(map[model.Color]int, len(model.Colors))

	for _, bet := range bets {
		colorCounts[bet.Color]++

		if bet.IsWinner == nil || !*bet.IsWinner {
			continue
		}
		winningCount++
		if bet.WinAmount != nil {
			totalWinnings = totalWinnings.Add(*bet.WinAmount)
			if bet.WinAmount.GreaterThan(biggestWin) {
				biggestWin = *bet.WinAmount
			}
		}
	}

	winRate := 0.0
	if gamesPlayed > 0 {
		winRate = math.Round(float64(winningCount)/float64(gamesPlayed)*1000) / 10
	}

	favorite := model.Colors[0]
	for _, color := range model.Colors[1:] {
		if colorCounts[color] > colorCounts[favorite] {
			favorite = color
		}
	}

	return &model.UserStats{
		GamesPlayed:   gamesPlayed,
		WinRate:       winRate,
		TotalWinnings: totalWinnings,
		BiggestWin:    biggestWin,
		FavoriteColor: favorite,
	}
}

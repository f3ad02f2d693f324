package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"colorbet/internal/config"
	"colorbet/internal/model"
	mocks "colorbet/mocks/repository"
)

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		BettingWindow:     25 * time.Second,
		ResolveDelay:      3 * time.Second,
		NextRoundDelay:    2 * time.Second,
		TickInterval:      time.Second,
		MinBet:            decimal.NewFromInt(10),
		PayoutMultiplier:  decimal.NewFromInt(2),
		InitialBalance:    decimal.NewFromInt(1000),
		RecentRoundsLimit: 10,
		DemoUsername:      "Player123",
	}
}

func bettingRound(id int64) *model.Round {
	return &model.Round{
		ID:        id,
		Status:    model.StatusBetting,
		StartTime: time.Now(),
	}
}

func TestPlaceBet_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockRoundRepo.On("GetCurrentRound", ctx).Return(bettingRound(1001), nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockUserRepo.On("GetUserForUpdate", ctx, "user-1", mock.Anything).Return(&model.User{
		ID:       "user-1",
		Username: "Player123",
		Balance:  decimal.NewFromInt(1000),
	}, nil)
	mockUserRepo.On("UpdateBalance", ctx, "user-1", decimal.NewFromInt(950), mock.Anything).Return(nil)
	mockBetRepo.On("InsertBet", ctx, mock.MatchedBy(func(bet *model.Bet) bool {
		return bet.UserID == "user-1" &&
			bet.RoundID == int64(1001) &&
			bet.Color == model.ColorRed &&
			bet.Amount.Equal(decimal.NewFromInt(50)) &&
			bet.IsWinner == nil &&
			bet.WinAmount == nil
	}), mock.Anything).Return(nil)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	bet, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "user-1",
		Color:  "red",
		Amount: "50",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, bet.ID)
	assert.Equal(t, int64(1001), bet.RoundID)
	assert.Equal(t, model.ColorRed, bet.Color)
}

func TestPlaceBet_RoundClosed_NoBetCreated(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	endTime := time.Now()
	mockRoundRepo.On("GetCurrentRound", ctx).Return(&model.Round{
		ID:        1001,
		Status:    model.StatusClosed,
		StartTime: endTime.Add(-26 * time.Second),
		EndTime:   &endTime,
	}, nil)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	bet, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "user-1",
		Color:  "red",
		Amount: "50",
	})

	assert.ErrorIs(t, err, model.ErrBettingClosed)
	assert.Nil(t, bet)
	mockBetRepo.AssertNotCalled(t, "InsertBet")
	mockDBManager.AssertNotCalled(t, "WithTransaction")
}

func TestPlaceBet_NoRound_BettingClosed(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockRoundRepo.On("GetCurrentRound", ctx).Return(nil, model.ErrRoundNotFound)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	_, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "user-1",
		Color:  "red",
		Amount: "50",
	})

	assert.ErrorIs(t, err, model.ErrBettingClosed)
}

func TestPlaceBet_UserNotFound(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockRoundRepo.On("GetCurrentRound", ctx).Return(bettingRound(1001), nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockUserRepo.On("GetUserForUpdate", ctx, "ghost", mock.Anything).Return(nil, model.ErrUserNotFound)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	_, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "ghost",
		Color:  "red",
		Amount: "50",
	})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	mockBetRepo.AssertNotCalled(t, "InsertBet")
}

func TestPlaceBet_BelowMinimum(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockRoundRepo.On("GetCurrentRound", ctx).Return(bettingRound(1001), nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockUserRepo.On("GetUserForUpdate", ctx, "user-1", mock.Anything).Return(&model.User{
		ID:      "user-1",
		Balance: decimal.NewFromInt(1000),
	}, nil)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	_, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "user-1",
		Color:  "red",
		Amount: "5",
	})

	assert.ErrorIs(t, err, model.ErrBetTooSmall)
	mockUserRepo.AssertNotCalled(t, "UpdateBalance")
	mockBetRepo.AssertNotCalled(t, "InsertBet")
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockRoundRepo.On("GetCurrentRound", ctx).Return(bettingRound(1001), nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockUserRepo.On("GetUserForUpdate", ctx, "user-1", mock.Anything).Return(&model.User{
		ID:      "user-1",
		Balance: decimal.NewFromInt(20),
	}, nil)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	_, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "user-1",
		Color:  "red",
		Amount: "50",
	})

	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	mockUserRepo.AssertNotCalled(t, "UpdateBalance")
	mockBetRepo.AssertNotCalled(t, "InsertBet")
}

func TestPlaceBet_InvalidColor(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockRoundRepo.On("GetCurrentRound", ctx).Return(bettingRound(1001), nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockUserRepo.On("GetUserForUpdate", ctx, "user-1", mock.Anything).Return(&model.User{
		ID:      "user-1",
		Balance: decimal.NewFromInt(1000),
	}, nil)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	_, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
		UserID: "user-1",
		Color:  "pink",
		Amount: "50",
	})

	assert.ErrorIs(t, err, model.ErrInvalidColor)
	mockUserRepo.AssertNotCalled(t, "UpdateBalance")
	mockBetRepo.AssertNotCalled(t, "InsertBet")
}

func TestPlaceBet_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockRoundRepo := mocks.NewRoundRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	service := NewBettingService(mockUserRepo, mockRoundRepo, mockBetRepo, mockDBManager, testGameConfig(), logger)

	for _, amount := range []string{"abc", "-5", "0"} {
		_, err := service.PlaceBet(ctx, &model.PlaceBetRequest{
			UserID: "user-1",
			Color:  "red",
			Amount: amount,
		})
		assert.ErrorIs(t, err, model.ErrInvalidAmount, "amount %q", amount)
	}

	mockRoundRepo.AssertNotCalled(t, "GetCurrentRound")
}

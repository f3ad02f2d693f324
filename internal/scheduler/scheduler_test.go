package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mocks "colorbet/mocks/service"
)

func TestScheduler_AdvancesOnEveryTick(t *testing.T) {
	mockRounds := mocks.NewRoundService(t)

	var calls atomic.Int32
	mockRounds.On("Advance", mock.Anything).Return(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	s := NewScheduler(mockRounds, 20*time.Millisecond, zerolog.Nop())
	s.Start(context.Background())

	time.Sleep(110 * time.Millisecond)
	s.Stop()

	// One immediate advance plus at least a few ticks
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestScheduler_KeepsTickingAfterErrors(t *testing.T) {
	mockRounds := mocks.NewRoundService(t)

	var calls atomic.Int32
	mockRounds.On("Advance", mock.Anything).Return(func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("database unavailable")
	})

	s := NewScheduler(mockRounds, 20*time.Millisecond, zerolog.Nop())
	s.Start(context.Background())

	time.Sleep(110 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	mockRounds := mocks.NewRoundService(t)
	mockRounds.On("Advance", mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())

	s := NewScheduler(mockRounds, 20*time.Millisecond, zerolog.Nop())
	s.Start(ctx)

	cancel()
	time.Sleep(50 * time.Millisecond)

	calls := len(mockRounds.Calls)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, calls, len(mockRounds.Calls), "no more ticks after cancellation")
	s.wg.Wait()
}

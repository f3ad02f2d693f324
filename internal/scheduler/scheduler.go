package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"colorbet/internal/service"
)

// Scheduler drives the round lifecycle as a single poll loop. Every tick it
// asks the round service to advance; the service derives all deadlines from
// stored timestamps, so there are no chained one-shot timers to orphan on
// shutdown or lose on restart.
type Scheduler struct {
	rounds   service.RoundService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewScheduler(rounds service.RoundService, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		rounds:   rounds,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("round scheduler started")

		// Advance immediately so a fresh or restarted process does not wait
		// a full tick before creating the initial round
		if err := s.rounds.Advance(ctx); err != nil {
			s.logger.Error().Err(err).Msg("failed to advance round")
		}

		for {
			select {
			case <-ticker.C:
				if err := s.rounds.Advance(ctx); err != nil {
					s.logger.Error().Err(err).Msg("failed to advance round")
				}
			case <-s.stopChan:
				s.logger.Info().Msg("round scheduler stopping")
				return
			case <-ctx.Done():
				s.logger.Info().Msg("round scheduler stopping (context done)")
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}

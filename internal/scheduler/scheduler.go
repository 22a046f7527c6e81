package scheduler

import (
	"context"
	"fmt"

	"StakeAdvisor/internal/collector"
	"StakeAdvisor/internal/model"
	"StakeAdvisor/internal/strategy"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler re-runs the recommendation on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Amount    float64
	Options   []strategy.Option
	Ctx       context.Context

	log   zerolog.Logger
	onRun func(*model.Allocation)
}

// NewScheduler creates a new Scheduler. The cron spec includes a seconds field.
func NewScheduler(ctx context.Context, col *collector.Collector, amount float64, log zerolog.Logger, opts ...strategy.Option) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Amount:    amount,
		Options:   opts,
		Ctx:       ctx,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// OnRun registers a callback invoked with every successful allocation.
func (s *Scheduler) OnRun(fn func(*model.Allocation)) {
	s.onRun = fn
}

// Register adds the recommendation task under spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.recommendTask); err != nil {
		return fmt.Errorf("register recommend task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the recommendation task immediately.
func (s *Scheduler) RunNow() (*model.Allocation, error) {
	return s.run()
}

func (s *Scheduler) recommendTask() {
	_, _ = s.run()
}

func (s *Scheduler) run() (*model.Allocation, error) {
	log := s.log.With().Str("run_id", uuid.NewString()).Logger()
	log.Info().Float64("amount", s.Amount).Msg("running recommendation")

	pools, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.Error().Err(err).Msg("collect pools")
		return nil, err
	}

	alloc := strategy.Explain(s.Amount, pools, s.Options...)
	for _, r := range alloc.Recommendations {
		log.Info().
			Str("pool_id", r.Pool.PoolID).
			Float64("zrx_amount", r.ZrxAmount).
			Float64("operator_share", r.Pool.NextEpochStats.OperatorShare).
			Msg("recommendation")
	}
	log.Info().
		Int("pools", len(pools)).
		Int("selected", len(alloc.Recommendations)).
		Float64("total", alloc.Total()).
		Msg("recommendation complete")

	if s.onRun != nil {
		s.onRun(alloc)
	}
	return alloc, nil
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

const (
	defaultInterval = 30 * time.Minute
	jobTimeout      = 30 * time.Second
)

// Recommender runs the weather + outfit workflow for a city.
type Recommender interface {
	GetWeatherAndRecommend(ctx context.Context, city string) outfit.Result
}

// Scheduler periodically refreshes recommendations for the watched locations so the
// history and heatmap stay current without user traffic.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	recommender Recommender
	locations   []weather.Location
	interval    time.Duration
	log         zerolog.Logger
}

// New creates a new Scheduler.
func New(locations []weather.Location, interval time.Duration, recommender Recommender) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		scheduler:   gocron.NewScheduler(time.UTC),
		recommender: recommender,
		locations:   locations,
		interval:    interval,
		log:         logging.With("scheduler"),
	}
}

// Start schedules the periodic job and starts the underlying scheduler. The first run
// happens immediately.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		s.log.Info().Msg("no locations configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Info().Int("locations", len(s.locations)).Dur("interval", s.interval).Msg("scheduler started")
	return nil
}

// RunOnce refreshes every location concurrently and waits for all of them.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.log.Debug().Msg("running recommendation refresh job")

	var wg sync.WaitGroup
	for _, loc := range s.locations {
		loc := loc // per-iteration copy; module targets go1.21 loop semantics
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(ctx, jobTimeout)
			defer cancel()

			res := s.recommender.GetWeatherAndRecommend(ctx, loc.Key())
			if !res.Success {
				s.log.Warn().Str("location", loc.Key()).Str("error", res.Error).Msg("refresh failed")
				return
			}
			s.log.Debug().Str("location", loc.Key()).Int("groups", len(res.Outfits)).Msg("refreshed")
		}()
	}
	wg.Wait()
	s.log.Debug().Msg("completed recommendation refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Schedule returns the next run time strictly after now.
type Schedule func(now time.Time) time.Time

// Every runs at a fixed interval measured from the previous run.
func Every(d time.Duration) Schedule {
	return func(now time.Time) time.Time { return now.Add(d) }
}

// DailyAt runs once a day at hour:00 in loc.
func DailyAt(hour int, loc *time.Location) Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return func(now time.Time) time.Time {
		local := now.In(loc)
		y, m, d := local.Date()
		next := time.Date(y, m, d, hour, 0, 0, 0, loc)
		if !next.After(local) {
			next = time.Date(y, m, d+1, hour, 0, 0, 0, loc)
		}
		return next
	}
}

type Job struct {
	Name     string
	Schedule Schedule
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs until its context is cancelled. A failing run is logged
// and the job keeps its schedule.
type Scheduler struct {
	jobs []Job
	now  func() time.Time
}

func New(jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, now: time.Now}
}

// Run blocks until ctx is done. It returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range s.jobs {
		job := job
		g.Go(func() error { return s.loop(ctx, job) })
	}
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Scheduler) loop(ctx context.Context, job Job) error {
	log.Printf("[scheduler][%s] started", job.Name)
	for {
		next := job.Schedule(s.now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Printf("[scheduler][%s] stopped", job.Name)
			return nil
		case <-timer.C:
		}
		s.runOnce(ctx, job)
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[scheduler][%s] panic recovered: %v", job.Name, r)
		}
	}()
	start := s.now()
	if err := job.Run(ctx); err != nil {
		log.Printf("[scheduler][%s] run failed err=%v", job.Name, err)
		return
	}
	log.Printf("[scheduler][%s] run ok duration=%s", job.Name, s.now().Sub(start))
}

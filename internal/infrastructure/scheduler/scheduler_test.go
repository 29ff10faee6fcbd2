package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestDailyAt(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	sched := DailyAt(3, loc)

	before := time.Date(2025, 1, 10, 2, 59, 0, 0, loc)
	if got := sched(before); !got.Equal(time.Date(2025, 1, 10, 3, 0, 0, 0, loc)) {
		t.Fatalf("expected same-day run, got %v", got)
	}
	at := time.Date(2025, 1, 10, 3, 0, 0, 0, loc)
	if got := sched(at); !got.Equal(time.Date(2025, 1, 11, 3, 0, 0, 0, loc)) {
		t.Fatalf("expected next-day run, got %v", got)
	}
	// 22:00 UTC is 03:30 IST on the following day.
	utc := time.Date(2025, 1, 10, 22, 0, 0, 0, time.UTC)
	if got := sched(utc); !got.Equal(time.Date(2025, 1, 12, 3, 0, 0, 0, loc)) {
		t.Fatalf("expected run in slot timezone, got %v", got)
	}
}

func TestSchedulerKeepsRunningAfterFailures(t *testing.T) {
	var runs atomic.Int32
	s := New(Job{
		Name:     "drain",
		Schedule: Every(5 * time.Millisecond),
		Run: func(context.Context) error {
			runs.Add(1)
			return errors.New("boom")
		},
	}, Job{
		Name:     "panicky",
		Schedule: Every(5 * time.Millisecond),
		Run: func(context.Context) error {
			panic("bad job")
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for runs.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("job ran only %d times", runs.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil on cancellation, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop")
	}
}

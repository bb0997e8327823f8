package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce_ExecutesEveryJob(t *testing.T) {
	t.Parallel()

	s := NewScheduler()

	calls := 0
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		calls++
		return nil
	})
	// A failing job must not stop the ones behind it.
	s.AddJob("boom", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	after := 0
	s.AddJob("after-boom", time.Hour, func(ctx context.Context) error {
		after++
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, after)
}

func TestStart_RunsJobImmediately(t *testing.T) {
	t.Parallel()

	s := NewScheduler()

	ran := make(chan struct{})
	var once sync.Once
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		once.Do(func() { close(ran) })
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run at startup")
	}
}

func TestStop_WaitsForJobLoops(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.AddJob("noop", time.Hour, func(ctx context.Context) error { return nil })
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

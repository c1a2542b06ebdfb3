package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

func countingTarget(path string, n *atomic.Int32) Target {
	return Target{Path: path, Fetch: func(ctx context.Context) error {
		n.Add(1)
		return nil
	}}
}

func TestEnqueueFull(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(PoolConfig{
		QueueSize: 1,
		Targets:   []Target{countingTarget("/teams/", &calls)},
		Logger:    zap.NewNop(),
	})

	// Workers not started, so the queue fills up
	require.True(t, pool.Enqueue("/teams/"))

	start := time.Now()
	enqueued := pool.Enqueue("/teams/")
	duration := time.Since(start)

	assert.False(t, enqueued, "Enqueue should return false when queue is full")
	assert.Less(t, duration, 10*time.Millisecond, "Enqueue must not block")
	assert.Equal(t, 1, pool.QueueDepth())
}

func TestEnqueueUnknownTarget(t *testing.T) {
	pool := NewPool(PoolConfig{Logger: zap.NewNop()})
	assert.False(t, pool.Enqueue("/nowhere"))
}

func TestStartWarmsImmediatelyAndStopDrains(t *testing.T) {
	var teams, venues atomic.Int32
	pool := NewPool(PoolConfig{
		WorkerCount: 2,
		Interval:    time.Hour,
		Targets: []Target{
			countingTarget("/teams/", &teams),
			countingTarget("/venues/", &venues),
		},
	})

	pool.Start(context.Background())
	require.Eventually(t, func() bool {
		return teams.Load() == 1 && venues.Load() == 1
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
	assert.False(t, pool.Enqueue("/teams/"), "enqueue after stop is shed")
	pool.Stop() // idempotent
}

func TestStopProcessesQueuedJobs(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	pool := NewPool(PoolConfig{
		WorkerCount: 1,
		QueueSize:   10,
		Interval:    time.Hour,
		Targets: []Target{
			{Path: "/slow", Fetch: func(ctx context.Context) error {
				<-release
				calls.Add(1)
				return nil
			}},
		},
	})

	pool.Start(context.Background())
	for i := 0; i < 3; i++ {
		pool.Enqueue("/slow")
	}
	close(release)
	pool.Stop()

	// the scheduler's initial round may or may not have been accepted before Stop
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestTickerReschedules(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(PoolConfig{
		WorkerCount: 1,
		Interval:    20 * time.Millisecond,
		Targets:     []Target{countingTarget("/toss/trends", &calls)},
	})

	pool.Start(context.Background())
	defer pool.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
}

func TestFailedJobDoesNotStopWorker(t *testing.T) {
	var ok atomic.Int32
	pool := NewPool(PoolConfig{
		WorkerCount: 1,
		Interval:    time.Hour,
		Targets: []Target{
			{Path: "/broken", Fetch: func(ctx context.Context) error { return errors.New("backend 500") }},
			countingTarget("/players/all", &ok),
		},
	})

	pool.Start(context.Background())
	defer pool.Stop()

	assert.Eventually(t, func() bool { return ok.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_ConcurrentEnqueueAndStop(t *testing.T) {
	var calls atomic.Int32
	pool := NewPool(PoolConfig{
		WorkerCount: 4,
		QueueSize:   16,
		Interval:    time.Hour,
		Targets:     []Target{countingTarget("/teams/", &calls)},
	})
	pool.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pool.Enqueue("/teams/")
			}
		}()
	}

	time.Sleep(5 * time.Millisecond)
	pool.Stop() // must not panic with senders still running
	wg.Wait()
}

// stubWarmable records which reads were made and whether they bypassed the cache.
type stubWarmable struct {
	mu    sync.Mutex
	calls []string
}

func (s *stubWarmable) hit(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *stubWarmable) Teams(ctx context.Context) ([]models.Team, error) {
	s.hit("teams")
	return nil, nil
}

func (s *stubWarmable) Venues(ctx context.Context) ([]models.Venue, error) {
	s.hit("venues")
	return nil, nil
}

func (s *stubWarmable) MatchesSummary(ctx context.Context) (*models.MatchesSummary, error) {
	s.hit("matches")
	return nil, nil
}

func (s *stubWarmable) TossTrends(ctx context.Context) ([]models.TossTrend, error) {
	s.hit("toss")
	return nil, nil
}

func (s *stubWarmable) HeadToHeadRecords(ctx context.Context) ([]models.HeadToHeadRecord, error) {
	s.hit("h2h")
	return nil, nil
}

func (s *stubWarmable) Players(ctx context.Context) ([]models.Player, error) {
	s.hit("players")
	return nil, nil
}

func TestStandardTargets(t *testing.T) {
	api := &stubWarmable{}
	targets := StandardTargets(api)
	require.Len(t, targets, 6)

	for _, target := range targets {
		require.NoError(t, target.Fetch(context.Background()))
	}
	assert.ElementsMatch(t, []string{"teams", "venues", "matches", "toss", "h2h", "players"}, api.calls)
}

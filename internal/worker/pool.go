// Package worker implements the buffered worker pool that keeps the response cache warm.
// A scheduler enqueues the standard set of backend reads on an interval and workers
// refetch them, so page views hit Redis instead of the analytics backend.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// Prometheus metrics
var (
	jobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ipl_dashboard_warm_jobs_enqueued_total",
		Help: "Cache warm jobs accepted by the queue",
	})

	jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ipl_dashboard_warm_jobs_processed_total",
		Help: "Cache warm jobs processed by workers",
	}, []string{"outcome"})

	jobsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ipl_dashboard_warm_jobs_load_shed_total",
		Help: "Cache warm jobs dropped because the queue was full or stopped",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ipl_dashboard_warm_queue_depth",
		Help: "Current depth of the warm queue",
	})

	warmDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ipl_dashboard_warm_duration_seconds",
		Help:    "Duration of a single cache warm fetch",
		Buckets: prometheus.DefBuckets,
	})
)

// Target is one backend read the warmer refreshes.
type Target struct {
	Path  string
	Fetch func(ctx context.Context) error
}

// Job represents a unit of work for the worker pool
type Job struct {
	Path      string
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Interval    time.Duration
	JobTimeout  time.Duration
	Targets     []Target
	Logger      *zap.Logger
}

// Pool manages a pool of workers refreshing cached backend reads.
type Pool struct {
	config   PoolConfig
	targets  map[string]Target
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	targets := make(map[string]Target, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets[t.Path] = t
	}

	return &Pool{
		config:   cfg,
		targets:  targets,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines and the scheduler. The first round of
// warm jobs is enqueued immediately.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.schedule()

	p.logger.Infow("Cache warmer started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"interval", p.config.Interval,
		"targets", len(p.targets),
	)
}

// Stop halts the scheduler, lets workers drain queued jobs and waits for them.
func (p *Pool) Stop() {
	p.logger.Info("Stopping cache warmer...")

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	if p.cancel != nil {
		p.cancel()
	}
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	queueDepth.Set(0)
	p.logger.Info("Cache warmer stopped")
}

// Enqueue adds a warm job without blocking. It returns false when the path is
// unknown, the queue is full or the pool is stopped.
func (p *Pool) Enqueue(path string) bool {
	if _, ok := p.targets[path]; !ok {
		p.logger.Warnw("Unknown warm target", "path", path)
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		jobsLoadShed.Inc()
		return false
	}

	select {
	case p.jobQueue <- Job{Path: path, Timestamp: time.Now()}:
		jobsEnqueued.Inc()
		queueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		p.logger.Warnw("Warm queue full, dropping job", "path", path)
		jobsLoadShed.Inc()
		return false
	}
}

// EnqueueAll schedules every target and returns how many were accepted.
func (p *Pool) EnqueueAll() int {
	accepted := 0
	for _, t := range p.config.Targets {
		if p.Enqueue(t.Path) {
			accepted++
		}
	}
	return accepted
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) schedule() {
	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	p.EnqueueAll()
	for {
		select {
		case <-ticker.C:
			n := p.EnqueueAll()
			p.logger.Infow("Scheduled cache warm", "accepted", n, "targets", len(p.config.Targets))
		case <-p.ctx.Done():
			return
		}
	}
}

// worker processes jobs until the queue is closed and drained.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		queueDepth.Set(float64(len(p.jobQueue)))
		p.process(id, job)
	}
}

func (p *Pool) process(id int, job Job) {
	target := p.targets[job.Path]

	// Queued jobs still run during Stop, so they do not inherit the pool context.
	ctx, cancel := context.WithTimeout(context.Background(), p.config.JobTimeout)
	defer cancel()

	start := time.Now()
	err := target.Fetch(backend.WithFreshFetch(ctx))
	warmDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		jobsProcessed.WithLabelValues("error").Inc()
		p.logger.Errorw("Cache warm failed", "worker", id, "path", job.Path, "error", err)
		return
	}
	jobsProcessed.WithLabelValues("ok").Inc()
	p.logger.Debugw("Cache warmed", "worker", id, "path", job.Path, "duration", time.Since(start), "queued", start.Sub(job.Timestamp))
}

// Warmable is the part of the backend client the standard warm set reads.
type Warmable interface {
	Teams(ctx context.Context) ([]models.Team, error)
	Venues(ctx context.Context) ([]models.Venue, error)
	MatchesSummary(ctx context.Context) (*models.MatchesSummary, error)
	TossTrends(ctx context.Context) ([]models.TossTrend, error)
	HeadToHeadRecords(ctx context.Context) ([]models.HeadToHeadRecord, error)
	Players(ctx context.Context) ([]models.Player, error)
}

// StandardTargets is the warm set: the list endpoints every dashboard section opens with.
func StandardTargets(api Warmable) []Target {
	return []Target{
		{Path: "/teams/", Fetch: func(ctx context.Context) error { _, err := api.Teams(ctx); return err }},
		{Path: "/venues/", Fetch: func(ctx context.Context) error { _, err := api.Venues(ctx); return err }},
		{Path: "/matches/", Fetch: func(ctx context.Context) error { _, err := api.MatchesSummary(ctx); return err }},
		{Path: "/toss/trends", Fetch: func(ctx context.Context) error { _, err := api.TossTrends(ctx); return err }},
		{Path: "/head-to-head/", Fetch: func(ctx context.Context) error { _, err := api.HeadToHeadRecords(ctx); return err }},
		{Path: "/players/all", Fetch: func(ctx context.Context) error { _, err := api.Players(ctx); return err }},
	}
}

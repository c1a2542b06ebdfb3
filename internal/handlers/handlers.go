package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WarmQueue exposes the cache warmer's queue for readiness reporting.
type WarmQueue interface {
	QueueDepth() int
}

type Config struct {
	Backend       Pinger
	Cache         Pinger
	History       Pinger
	Warmer        WarmQueue
	Logger        *zap.Logger
	DefaultSeason int
	// Services
	Dashboard  logic.DashboardService
	Teams      logic.TeamService
	Venues     logic.VenueService
	Matches    logic.MatchService
	Toss       logic.TossService
	HeadToHead logic.HeadToHeadService
	Players    logic.PlayerStatsService
	Prediction logic.PredictionService
}

type Handler struct {
	backend       Pinger
	cache         Pinger
	history       Pinger
	warmer        WarmQueue
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	defaultSeason int
	dashboard     logic.DashboardService
	teams         logic.TeamService
	venues        logic.VenueService
	matches       logic.MatchService
	toss          logic.TossService
	headToHead    logic.HeadToHeadService
	players       logic.PlayerStatsService
	prediction    logic.PredictionService
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DefaultSeason <= 0 {
		cfg.DefaultSeason = 2024
	}

	return &Handler{
		backend:       cfg.Backend,
		cache:         cfg.Cache,
		history:       cfg.History,
		warmer:        cfg.Warmer,
		logger:        cfg.Logger.Sugar(),
		validator:     models.Validator(),
		defaultSeason: cfg.DefaultSeason,
		dashboard:     cfg.Dashboard,
		teams:         cfg.Teams,
		venues:        cfg.Venues,
		matches:       cfg.Matches,
		toss:          cfg.Toss,
		headToHead:    cfg.HeadToHead,
		players:       cfg.Players,
		prediction:    cfg.Prediction,
	}
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

// upstream is a fake analytics service answering canned bodies by escaped path.
type upstream struct {
	mu     sync.Mutex
	routes map[string]upstreamRoute
	hits   map[string]int
}

type upstreamRoute struct {
	status int
	body   string
}

func newUpstream(t *testing.T) (*upstream, *httptest.Server) {
	t.Helper()
	u := &upstream{routes: map[string]upstreamRoute{}, hits: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		route, ok := u.routes[r.URL.EscapedPath()]
		u.hits[r.URL.EscapedPath()]++
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
			return
		}
		w.WriteHeader(route.status)
		_, _ = w.Write([]byte(route.body))
	}))
	t.Cleanup(srv.Close)
	return u, srv
}

func (u *upstream) on(path string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = upstreamRoute{status: status, body: body}
}

func (u *upstream) total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, c := range u.hits {
		n += c
	}
	return n
}

// MockPinger reports the configured error.
type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

type MockWarmQueue struct {
	Depth int
}

func (m *MockWarmQueue) QueueDepth() int { return m.Depth }

// newStack wires the real client, services, handlers and router against a fake upstream.
func newStack(t *testing.T, cfg Config) (*upstream, http.Handler) {
	t.Helper()
	up, srv := newUpstream(t)
	api := backend.New(backend.Options{BaseURL: srv.URL, Timeout: 2 * time.Second})

	logger := zap.NewNop()
	cfg.Backend = api
	cfg.Logger = logger
	cfg.Dashboard = logic.NewDashboardService(api)
	cfg.Teams = logic.NewTeamStatsService(api)
	cfg.Venues = logic.NewVenueStatsService(api)
	cfg.Matches = logic.NewMatchStatsService(api)
	cfg.Toss = logic.NewTossStatsService(api)
	cfg.HeadToHead = logic.NewHeadToHeadService(api)
	cfg.Players = logic.NewPlayerStatsService(api)
	if cfg.Prediction == nil {
		cfg.Prediction = logic.NewPredictionService(api, nil, logger)
	}

	return up, NewRouter(New(cfg), []string{"http://localhost:3000"})
}

func serve(router http.Handler, method, target string, body *string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

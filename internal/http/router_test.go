package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/scorebug-service/internal/app/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/app/teams"
	"github.com/preston-bernstein/scorebug-service/internal/clockfmt"
	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/http/handlers"
	"github.com/preston-bernstein/scorebug-service/internal/http/overlay"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
	"github.com/preston-bernstein/scorebug-service/internal/playback"
	"github.com/preston-bernstein/scorebug-service/internal/testutil"
	"github.com/preston-bernstein/scorebug-service/internal/validation"
)

func newTestRouter(t *testing.T, withAdmin bool) http.Handler {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	ms := testutil.NewStore()
	rec := metrics.NewRecorder()
	catalog := demo.DefaultCatalog()
	registry := playback.NewRegistry(time.Millisecond, logger, rec)

	boardSvc := scoreboard.NewService(ms, validation.New(ms, clockfmt.ModeLenient), rec, logger)
	cfg := RouterConfig{
		Handler:        handlers.NewHandler(teams.NewService(ms), boardSvc, catalog, registry, logger),
		Overlay:        overlay.NewHandler(context.Background(), catalog, registry, []string{"*"}, logger),
		Logger:         logger,
		Metrics:        rec,
		AllowedOrigins: []string{"*"},
	}
	if withAdmin {
		cfg.Admin = handlers.NewAdminHandler(catalog, "", "token", logger)
	}
	return NewRouter(cfg)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, false)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/api/v1/teams", "", http.StatusOK},
		{http.MethodGet, "/api/v1/teams/celtics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/teams/sonics", "", http.StatusNotFound},
		{http.MethodPost, "/api/v1/validate", `{"field":"quarter","value":"OT"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/validate/state", `{}`, http.StatusOK},
		{http.MethodPost, "/api/v1/format", `{"kind":"tenths","value":14.2}`, http.StatusOK},
		{http.MethodGet, "/api/v1/scoreboard", "", http.StatusOK},
		{http.MethodPost, "/api/v1/scoreboard/events", `{"event":"cancel"}`, http.StatusConflict},
		{http.MethodGet, "/api/v1/demo/scenarios", "", http.StatusOK},
		{http.MethodGet, "/api/v1/demo/scenarios/celtics-bulls-game-winner", "", http.StatusOK},
		{http.MethodGet, "/api/v1/demo/scenarios/celtics-bulls-game-winner/state?t=20", "", http.StatusOK},
		{http.MethodGet, "/api/v1/demo/scenarios/missing/stream", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/demo/sessions", "", http.StatusOK},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, strings.NewReader(tc.body))
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d (%s)", tc.method, tc.path, tc.want, rr.Code, rr.Body.String())
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, false)
	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	router := newTestRouter(t, false)
	rr := testutil.Serve(router, http.MethodDelete, "/api/v1/scoreboard", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterAdminMountedOnlyWhenConfigured(t *testing.T) {
	rr := testutil.Serve(newTestRouter(t, false), http.MethodPost, "/admin/scenarios/reload", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(newTestRouter(t, true), http.MethodPost, "/admin/scenarios/reload", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestRouterSetsRequestIDAndCORSHeaders(t *testing.T) {
	router := newTestRouter(t, false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

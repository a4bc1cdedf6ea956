package server

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/scorebug-service/internal/app/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/app/teams"
	"github.com/preston-bernstein/scorebug-service/internal/config"
	"github.com/preston-bernstein/scorebug-service/internal/demo"
	domainboard "github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	domainteams "github.com/preston-bernstein/scorebug-service/internal/domain/teams"
	"github.com/preston-bernstein/scorebug-service/internal/editor"
	httpserver "github.com/preston-bernstein/scorebug-service/internal/http"
	"github.com/preston-bernstein/scorebug-service/internal/http/handlers"
	"github.com/preston-bernstein/scorebug-service/internal/http/overlay"
	"github.com/preston-bernstein/scorebug-service/internal/logging"
	"github.com/preston-bernstein/scorebug-service/internal/metrics"
	"github.com/preston-bernstein/scorebug-service/internal/playback"
	"github.com/preston-bernstein/scorebug-service/internal/store"
	"github.com/preston-bernstein/scorebug-service/internal/validation"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	teamsService  *teams.Service
	boardService  *scoreboard.Service
	catalog       *demo.Catalog
	sessions      *playback.Registry
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	stopStreams   context.CancelFunc
}

// New constructs a server with the NBA team catalog, the tip-off board and the configured demo scenarios.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore, teamSvc, boardSvc := buildServices(cfg, logger, recorder)
	catalog := buildCatalog(cfg, logger)
	sessions := playback.NewRegistry(cfg.Demo.ThrottleInterval, logger, recorder)

	streamCtx, stopStreams := context.WithCancel(context.Background())
	httpSrv := buildHTTPServer(streamCtx, cfg, teamSvc, boardSvc, catalog, sessions, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		teamsService:  teamSvc,
		boardService:  boardSvc,
		catalog:       catalog,
		sessions:      sessions,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		stopStreams:   stopStreams,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, sessions *playback.Registry) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		sessions:   sessions,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *teams.Service, *scoreboard.Service) {
	memoryStore := store.NewMemoryStore(editor.NewBoard(domainboard.Default()))
	teamSvc := teams.NewService(memoryStore)
	teamSvc.ReplaceTeams(domainteams.NBA())

	validator := validation.New(memoryStore, cfg.GameClockMode)
	boardSvc := scoreboard.NewService(memoryStore, validator, recorder, logger)
	return memoryStore, teamSvc, boardSvc
}

// buildCatalog loads the configured scenario file, falling back to the built-in scenario.
func buildCatalog(cfg config.Config, logger *slog.Logger) *demo.Catalog {
	if cfg.Demo.ScenarioFile == "" {
		return demo.DefaultCatalog()
	}
	catalog, err := demo.LoadCatalog(cfg.Demo.ScenarioFile)
	if err != nil {
		logger.Warn("scenario file unusable, using built-in scenario",
			slog.String("path", cfg.Demo.ScenarioFile),
			slog.Any("error", err),
		)
		return demo.DefaultCatalog()
	}
	logger.Info("scenario catalog loaded",
		slog.String("path", cfg.Demo.ScenarioFile),
		slog.Int("scenarios", catalog.Len()),
	)
	return catalog
}

func buildHTTPServer(
	streamCtx context.Context,
	cfg config.Config,
	teamSvc *teams.Service,
	boardSvc *scoreboard.Service,
	catalog *demo.Catalog,
	sessions *playback.Registry,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) httpServer {
	routerCfg := httpserver.RouterConfig{
		Handler:        handlers.NewHandler(teamSvc, boardSvc, catalog, sessions, logger),
		Overlay:        overlay.NewHandler(streamCtx, catalog, sessions, cfg.HTTP.AllowedOrigins, logger),
		Logger:         logger,
		Metrics:        recorder,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}
	// Mount the admin reload endpoint only when a token is configured.
	if cfg.HTTP.AdminToken != "" {
		routerCfg.Admin = handlers.NewAdminHandler(catalog, cfg.Demo.ScenarioFile, cfg.HTTP.AdminToken, logger)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpserver.NewRouter(routerCfg),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Overlay pumps hold hijacked connections that http.Server.Shutdown does not track.
	if s.stopStreams != nil {
		s.stopStreams()
	}
	if s.sessions != nil {
		s.sessions.CloseAll()
	}

	var g errgroup.Group
	g.Go(func() error {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("graceful shutdown failed", "error", err)
		}
		return nil
	})
	if s.metricsServer != nil {
		g.Go(func() error {
			if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
				s.logger.Warn("metrics server shutdown failed", "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

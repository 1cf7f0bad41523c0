package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arklim/passmeter/internal/infra/blacklist"
	"github.com/arklim/passmeter/internal/infra/config"
	"github.com/arklim/passmeter/internal/infra/logger"
	"github.com/arklim/passmeter/internal/infra/ratelimit"
	"github.com/arklim/passmeter/internal/transport/http/middleware"
	"github.com/arklim/passmeter/internal/transport/http/routes"
	"github.com/arklim/passmeter/internal/usecase"
)

type Application struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

// New wires the blacklist store, the evaluation service, and the HTTP layer.
// The blacklist is loaded exactly once here, before any request is served.
func New(_ context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{
		Namespace: cfg.Telemetry.MetricsNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	store := blacklist.Load(cfg.Blacklist.Path, log)

	evaluator := usecase.NewEvaluationService(store, log)

	rateLimiter := middleware.NewRateLimiter(ratelimit.NewMemoryStore(), log)

	engine := routes.Register(routes.Dependencies{
		Config:      cfg,
		Logger:      log,
		RateLimiter: rateLimiter,
		Metrics:     metrics,
		Evaluator:   evaluator,
		Blacklist:   store,
	})

	return &Application{
		cfg:    cfg,
		engine: engine,
		logger: log,
	}, nil
}

func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting passmeter API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-serverErrCh:
		return err
	}
}

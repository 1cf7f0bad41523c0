package routes

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arklim/passmeter/internal/core/port"
	"github.com/arklim/passmeter/internal/infra/config"
	"github.com/arklim/passmeter/internal/transport/http/handlers"
	"github.com/arklim/passmeter/internal/transport/http/middleware"
	"github.com/arklim/passmeter/internal/usecase"
)

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config      *config.AppConfig
	Logger      *zap.Logger
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.HTTPMetrics
	Evaluator   *usecase.EvaluationService
	Blacklist   port.Blacklist
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config != nil && deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	if deps.Config != nil {
		r.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))
	}
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Handler())
	}

	r.SetHTMLTemplate(handlers.Templates())

	healthOptions := make([]handlers.HealthOption, 0, 1)
	if deps.Blacklist != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("blacklist", blacklistCheck(deps.Blacklist)))
	}
	healthHandler := handlers.NewHealthHandler(healthOptions...)

	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	evaluateHandler := handlers.NewEvaluateHandler(deps.Evaluator)

	evaluateMiddlewares := buildEvaluateMiddlewares(deps)

	pageHandlers := append([]gin.HandlerFunc{}, evaluateMiddlewares...)
	r.GET("/", evaluateHandler.ShowForm)
	r.POST("/", append(pageHandlers, evaluateHandler.SubmitForm)...)

	api := r.Group("/api/v1")
	{
		passwordGroup := api.Group("/password")
		if len(evaluateMiddlewares) > 0 {
			passwordGroup.Use(evaluateMiddlewares...)
		}
		passwordGroup.POST("/evaluate", evaluateHandler.Evaluate)
	}

	return r
}

func buildEvaluateMiddlewares(deps Dependencies) []gin.HandlerFunc {
	if deps.RateLimiter == nil || deps.Config == nil {
		return nil
	}

	limit := deps.Config.RateLimit.EvaluateMaxAttempts
	if limit <= 0 {
		return nil
	}

	window := deps.Config.RateLimit.WindowDuration
	if window <= 0 {
		window = time.Minute
	}

	rule := middleware.RateLimitRule{
		Name:       "password_evaluate_ip",
		Limit:      limit,
		Window:     window,
		Identifier: middleware.ClientIPIdentifier(),
	}

	return []gin.HandlerFunc{deps.RateLimiter.RateLimit(rule)}
}

var errNotLoaded = errors.New("blacklist store not initialized")

func blacklistCheck(bl port.Blacklist) handlers.ReadinessCheck {
	return func(_ context.Context) error {
		// The store degrades to an empty set when the source file is missing,
		// so readiness only verifies the store was constructed.
		if bl == nil {
			return errNotLoaded
		}
		return nil
	}
}

// Package http provides the HTTP server, its router and the shared middleware.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	analysisHTTP "github.com/septer/septer/internal/analysis/http"
	authDomain "github.com/septer/septer/internal/auth/domain"
	authHTTP "github.com/septer/septer/internal/auth/http"
	authUseCase "github.com/septer/septer/internal/auth/usecase"
	"github.com/septer/septer/internal/config"
	dashboardHTTP "github.com/septer/septer/internal/dashboard/http"
	logFileHTTP "github.com/septer/septer/internal/logfile/http"
	"github.com/septer/septer/internal/metrics"
	userHTTP "github.com/septer/septer/internal/user/http"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
}

// Handlers groups the endpoint handlers mounted by SetupRouter.
type Handlers struct {
	Token     *authHTTP.TokenHandler
	User      *userHTTP.UserHandler
	LogFile   *logFileHTTP.LogFileHandler
	Analysis  *analysisHTTP.AnalysisHandler
	Dashboard *dashboardHTTP.DashboardHandler
}

// NewServer creates a new HTTP server. The router is attached by SetupRouter.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      120 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter builds the route table.
//
// Public: /health, /ready, POST /api/hunter/signup, POST /api/auth/login and
// POST {GuardianLoginPath}/login. Everything else requires a bearer token;
// the dashboard additionally requires the Guardian role. ctx bounds the
// background cleanup of the rate limiters.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	tokenUseCase authUseCase.TokenUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace(), "/health", "/ready"))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	credentialLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimitLoginEnabled {
		credentialLimit = authHTTP.LoginRateLimitMiddleware(
			ctx,
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		)
	}

	router.POST("/api/auth/login", credentialLimit, handlers.Token.LoginHandler)
	router.POST(cfg.GuardianLoginPath+"/login", credentialLimit, handlers.Token.GuardianLoginHandler)
	router.POST("/api/hunter/signup", credentialLimit, handlers.User.SignupHandler)

	authenticated := router.Group("/api")
	authenticated.Use(authHTTP.AuthenticationMiddleware(tokenUseCase, s.logger))
	{
		authenticated.PUT("/hunter/add-api-key", handlers.User.AddAPIKeyHandler)

		logs := authenticated.Group("/logs")
		logs.POST("/upload", handlers.LogFile.UploadHandler)

		askChain := []gin.HandlerFunc{}
		if cfg.RateLimitEnabled {
			askChain = append(askChain, authHTTP.UserRateLimitMiddleware(
				ctx,
				cfg.RateLimitRequestsPerSec,
				cfg.RateLimitBurst,
				s.logger,
			))
		}
		askChain = append(askChain, handlers.Analysis.AskHandler)
		logs.POST("/ask", askChain...)

		guardian := authenticated.Group("/guardian")
		guardian.Use(authHTTP.RequireRoleMiddleware(authDomain.RoleGuardian, s.logger))
		guardian.GET("/dashboard", handlers.Dashboard.GetHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, s.logger, "api")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	database := "ok"
	if s.db == nil {
		database = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			database = "error"
		}
	}

	if database != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": database},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": database},
	})
}

// listenAndServe runs srv until it fails or is shut down.
func listenAndServe(srv *http.Server, logger *slog.Logger, name string) error {
	logger.Info("starting http server", slog.String("server", name), slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

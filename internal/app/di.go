// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	analysisHTTP "github.com/septer/septer/internal/analysis/http"
	analysisService "github.com/septer/septer/internal/analysis/service"
	analysisUseCase "github.com/septer/septer/internal/analysis/usecase"
	authHTTP "github.com/septer/septer/internal/auth/http"
	authService "github.com/septer/septer/internal/auth/service"
	authUseCase "github.com/septer/septer/internal/auth/usecase"
	"github.com/septer/septer/internal/config"
	cryptoDomain "github.com/septer/septer/internal/crypto/domain"
	cryptoService "github.com/septer/septer/internal/crypto/service"
	dashboardHTTP "github.com/septer/septer/internal/dashboard/http"
	dashboardUseCase "github.com/septer/septer/internal/dashboard/usecase"
	"github.com/septer/septer/internal/database"
	"github.com/septer/septer/internal/http"
	logFileHTTP "github.com/septer/septer/internal/logfile/http"
	"github.com/septer/septer/internal/logfile/storage"
	logFileUseCase "github.com/septer/septer/internal/logfile/usecase"
	"github.com/septer/septer/internal/metrics"
	userHTTP "github.com/septer/septer/internal/user/http"
	userUseCase "github.com/septer/septer/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access and shared afterwards.
type Container struct {
	config *config.Config

	// ctx lives until Shutdown and bounds background work such as limiter cleanup.
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	storage         storage.Storage
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Crypto
	secretMaterial   *cryptoDomain.SecretMaterial
	credentialCipher cryptoService.CredentialCipher
	kmsKeeper        cryptoDomain.KMSKeeper
	secretSealer     cryptoService.SecretSealer

	// Services
	tokenService authService.TokenService
	llmClient    analysisService.LLMClient

	// Repositories
	userRepository         userUseCase.UserRepository
	logFileRepository      logFileUseCase.LogFileRepository
	conversationRepository analysisUseCase.ConversationRepository
	dashboardRepository    dashboardUseCase.DashboardRepository

	// Use Cases
	tokenUseCase     authUseCase.TokenUseCase
	userUseCase      userUseCase.UserUseCase
	logFileUseCase   logFileUseCase.LogFileUseCase
	analysisUseCase  analysisUseCase.AnalysisUseCase
	dashboardUseCase dashboardUseCase.DashboardUseCase

	// Handlers
	tokenHandler     *authHTTP.TokenHandler
	userHandler      *userHTTP.UserHandler
	logFileHandler   *logFileHTTP.LogFileHandler
	analysisHandler  *analysisHTTP.AnalysisHandler
	dashboardHandler *dashboardHTTP.DashboardHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                         sync.Mutex
	loggerInit                 sync.Once
	dbInit                     sync.Once
	txManagerInit              sync.Once
	storageInit                sync.Once
	metricsProviderInit        sync.Once
	businessMetricsInit        sync.Once
	secretMaterialInit         sync.Once
	credentialCipherInit       sync.Once
	kmsKeeperInit              sync.Once
	secretSealerInit           sync.Once
	tokenServiceInit           sync.Once
	llmClientInit              sync.Once
	userRepositoryInit         sync.Once
	logFileRepositoryInit      sync.Once
	conversationRepositoryInit sync.Once
	dashboardRepositoryInit    sync.Once
	tokenUseCaseInit           sync.Once
	userUseCaseInit            sync.Once
	logFileUseCaseInit         sync.Once
	analysisUseCaseInit        sync.Once
	dashboardUseCaseInit       sync.Once
	tokenHandlerInit           sync.Once
	userHandlerInit            sync.Once
	logFileHandlerInit         sync.Once
	analysisHandlerInit        sync.Once
	dashboardHandlerInit       sync.Once
	httpServerInit             sync.Once
	metricsServerInit          sync.Once
	initErrors                 map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.setInitError("db", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("db"); storedErr != nil {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.setInitError("txManager", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("txManager"); storedErr != nil {
		return nil, storedErr
	}
	return c.txManager, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.kmsKeeper != nil {
		if err := c.kmsKeeper.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("kms keeper close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(c.ctx, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

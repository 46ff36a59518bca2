package app

import (
	"fmt"

	"github.com/septer/septer/internal/http"
)

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("httpServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.httpServer, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for http server: %w", err)
	}

	var handlers http.Handlers
	if handlers.Token, err = c.TokenHandler(); err != nil {
		return nil, fmt.Errorf("failed to get token handler for http server: %w", err)
	}
	if handlers.User, err = c.UserHandler(); err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}
	if handlers.LogFile, err = c.LogFileHandler(); err != nil {
		return nil, fmt.Errorf("failed to get log file handler for http server: %w", err)
	}
	if handlers.Analysis, err = c.AnalysisHandler(); err != nil {
		return nil, fmt.Errorf("failed to get analysis handler for http server: %w", err)
	}
	if handlers.Dashboard, err = c.DashboardHandler(); err != nil {
		return nil, fmt.Errorf("failed to get dashboard handler for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.ctx, c.config, handlers, tokenUseCase, metricsProvider)

	return server, nil
}

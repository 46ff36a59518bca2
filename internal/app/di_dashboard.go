package app

import (
	"fmt"

	dashboardHTTP "github.com/septer/septer/internal/dashboard/http"
	dashboardRepository "github.com/septer/septer/internal/dashboard/repository"
	dashboardUseCase "github.com/septer/septer/internal/dashboard/usecase"
)

// DashboardRepository returns the dashboard repository based on database driver.
func (c *Container) DashboardRepository() (dashboardUseCase.DashboardRepository, error) {
	var err error
	c.dashboardRepositoryInit.Do(func() {
		c.dashboardRepository, err = c.initDashboardRepository()
		if err != nil {
			c.setInitError("dashboardRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("dashboardRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.dashboardRepository, nil
}

// DashboardUseCase returns the Guardian dashboard use case.
func (c *Container) DashboardUseCase() (dashboardUseCase.DashboardUseCase, error) {
	var err error
	c.dashboardUseCaseInit.Do(func() {
		c.dashboardUseCase, err = c.initDashboardUseCase()
		if err != nil {
			c.setInitError("dashboardUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("dashboardUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.dashboardUseCase, nil
}

// DashboardHandler returns the dashboard handler.
func (c *Container) DashboardHandler() (*dashboardHTTP.DashboardHandler, error) {
	var err error
	c.dashboardHandlerInit.Do(func() {
		var useCase dashboardUseCase.DashboardUseCase
		useCase, err = c.DashboardUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get dashboard use case for dashboard handler: %w", err)
			c.setInitError("dashboardHandler", err)
			return
		}
		c.dashboardHandler = dashboardHTTP.NewDashboardHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("dashboardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.dashboardHandler, nil
}

func (c *Container) initDashboardRepository() (dashboardUseCase.DashboardRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for dashboard repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return dashboardRepository.NewMySQLDashboardRepository(db), nil
	case "postgres":
		return dashboardRepository.NewPostgreSQLDashboardRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initDashboardUseCase() (dashboardUseCase.DashboardUseCase, error) {
	repository, err := c.DashboardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard repository for dashboard use case: %w", err)
	}

	users, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for dashboard use case: %w", err)
	}

	cipher, err := c.CredentialCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential cipher for dashboard use case: %w", err)
	}

	baseUseCase := dashboardUseCase.NewDashboardUseCase(repository, users, cipher, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for dashboard use case: %w", err)
		}
		return dashboardUseCase.NewDashboardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

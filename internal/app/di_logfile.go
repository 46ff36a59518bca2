package app

import (
	"fmt"

	logFileHTTP "github.com/septer/septer/internal/logfile/http"
	logFileRepository "github.com/septer/septer/internal/logfile/repository"
	"github.com/septer/septer/internal/logfile/storage"
	logFileUseCase "github.com/septer/septer/internal/logfile/usecase"
)

// Storage returns the log content store selected by STORAGE_DRIVER.
func (c *Container) Storage() (storage.Storage, error) {
	var err error
	c.storageInit.Do(func() {
		c.storage, err = storage.New(c.ctx, c.config)
		if err != nil {
			err = fmt.Errorf("failed to create storage: %w", err)
			c.setInitError("storage", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("storage"); storedErr != nil {
		return nil, storedErr
	}
	return c.storage, nil
}

// LogFileRepository returns the log file repository based on database driver.
func (c *Container) LogFileRepository() (logFileUseCase.LogFileRepository, error) {
	var err error
	c.logFileRepositoryInit.Do(func() {
		c.logFileRepository, err = c.initLogFileRepository()
		if err != nil {
			c.setInitError("logFileRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("logFileRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.logFileRepository, nil
}

// LogFileUseCase returns the log upload use case.
func (c *Container) LogFileUseCase() (logFileUseCase.LogFileUseCase, error) {
	var err error
	c.logFileUseCaseInit.Do(func() {
		c.logFileUseCase, err = c.initLogFileUseCase()
		if err != nil {
			c.setInitError("logFileUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("logFileUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.logFileUseCase, nil
}

// LogFileHandler returns the upload handler.
func (c *Container) LogFileHandler() (*logFileHTTP.LogFileHandler, error) {
	var err error
	c.logFileHandlerInit.Do(func() {
		var useCase logFileUseCase.LogFileUseCase
		useCase, err = c.LogFileUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get log file use case for log file handler: %w", err)
			c.setInitError("logFileHandler", err)
			return
		}
		c.logFileHandler = logFileHTTP.NewLogFileHandler(useCase, c.config.UploadMaxBytes(), c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("logFileHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.logFileHandler, nil
}

func (c *Container) initLogFileRepository() (logFileUseCase.LogFileRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for log file repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return logFileRepository.NewMySQLLogFileRepository(db), nil
	case "postgres":
		return logFileRepository.NewPostgreSQLLogFileRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initLogFileUseCase() (logFileUseCase.LogFileUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for log file use case: %w", err)
	}

	repository, err := c.LogFileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get log file repository for log file use case: %w", err)
	}

	store, err := c.Storage()
	if err != nil {
		return nil, fmt.Errorf("failed to get storage for log file use case: %w", err)
	}

	baseUseCase := logFileUseCase.NewLogFileUseCase(
		txManager,
		repository,
		store,
		c.config.UploadMaxBytes(),
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for log file use case: %w", err)
		}
		return logFileUseCase.NewLogFileUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// Package mocks provides mock implementations of the log file use case, its
// repository and storage for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	logFileDomain "github.com/septer/septer/internal/logfile/domain"
)

// MockLogFileRepository is a mock implementation of LogFileRepository for testing.
type MockLogFileRepository struct {
	mock.Mock
}

// Create mocks the Create method of LogFileRepository.
func (m *MockLogFileRepository) Create(ctx context.Context, logFile *logFileDomain.LogFile) error {
	args := m.Called(ctx, logFile)
	return args.Error(0)
}

// GetByIDForUser mocks the GetByIDForUser method of LogFileRepository.
func (m *MockLogFileRepository) GetByIDForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*logFileDomain.LogFile, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logFileDomain.LogFile), args.Error(1)
}

// MockStorage is a mock implementation of storage.Storage for testing.
type MockStorage struct {
	mock.Mock
}

// Put mocks the Put method of Storage.
func (m *MockStorage) Put(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

// Get mocks the Get method of Storage.
func (m *MockStorage) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Delete mocks the Delete method of Storage.
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockLogFileUseCase is a mock implementation of LogFileUseCase for testing.
type MockLogFileUseCase struct {
	mock.Mock
}

// Upload mocks the Upload method of LogFileUseCase.
func (m *MockLogFileUseCase) Upload(
	ctx context.Context,
	input *logFileDomain.UploadInput,
) (*logFileDomain.LogFile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logFileDomain.LogFile), args.Error(1)
}

// Get mocks the Get method of LogFileUseCase.
func (m *MockLogFileUseCase) Get(
	ctx context.Context,
	userID, logID uuid.UUID,
) (*logFileDomain.LogFile, error) {
	args := m.Called(ctx, userID, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logFileDomain.LogFile), args.Error(1)
}

// Content mocks the Content method of LogFileUseCase.
func (m *MockLogFileUseCase) Content(ctx context.Context, logFile *logFileDomain.LogFile) ([]byte, error) {
	args := m.Called(ctx, logFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/septer/septer/internal/errors"
)

// LocalStorage stores each key as a file inside a single directory.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates dir if needed and returns a storage rooted there.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, apperrors.Wrap(err, "failed to create storage directory")
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", ErrInvalidKey
	}
	return filepath.Join(l.dir, key), nil
}

// Put writes data to a temporary file and renames it into place.
func (l *LocalStorage) Put(_ context.Context, key string, data []byte) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return apperrors.Wrap(err, "failed to create temporary file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return apperrors.Wrap(err, "failed to write log content")
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(err, "failed to close temporary file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperrors.Wrap(err, "failed to store log content")
	}
	return nil
}

// Get reads the file stored under key.
func (l *LocalStorage) Get(_ context.Context, key string) ([]byte, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // key is a bare file name
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to read log content")
	}
	return data, nil
}

// Delete removes the file stored under key.
func (l *LocalStorage) Delete(_ context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.Wrap(err, "failed to delete log content")
	}
	return nil
}

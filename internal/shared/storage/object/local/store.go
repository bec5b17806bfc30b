package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resume-optimizer/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the user's namespace.
func (s *Store) Save(ctx context.Context, userID string, fileName string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	storageKey, err := object.BuildKey(userID, fileName)
	if err != nil {
		return "", 0, fmt.Errorf("build storage key: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(storageKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", 0, fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return "", 0, fmt.Errorf("write body: %w", err)
	}
	return storageKey, written, nil
}

// Open opens a stored object for reading after verifying ownership of the key.
func (s *Store) Open(ctx context.Context, userID string, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := object.CheckOwnership(userID, storageKey); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(storageKey))
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a stored object after verifying ownership of the key.
func (s *Store) Delete(ctx context.Context, userID string, storageKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := object.CheckOwnership(userID, storageKey); err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(storageKey))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

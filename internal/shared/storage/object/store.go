package object

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"resume-optimizer/internal/shared/util"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// Objects are keyed by "{userID}/{name}"; Open and Delete refuse keys whose
// first path segment does not match the caller's identity.
type ObjectStore interface {
	Save(ctx context.Context, userID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, err error)
	Open(ctx context.Context, userID string, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, userID string, storageKey string) error
}

// ErrForbiddenKey is returned when a storage key is not owned by the caller.
var ErrForbiddenKey = errors.New("storage key not owned by caller")

// BuildKey derives a storage key under the user's prefix from the original
// file name: "{userID}/{unixnano}{ext}".
func BuildKey(userID, fileName string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	if strings.ContainsAny(userID, "/\\") || strings.Contains(userID, "..") {
		return "", errors.New("invalid user id")
	}
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), util.FileExt(sanitized))
	return path.Join(userID, name), nil
}

// CheckOwnership verifies the first path segment of the key equals userID.
func CheckOwnership(userID, storageKey string) error {
	clean := path.Clean(storageKey)
	if strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		return ErrForbiddenKey
	}
	segment, _, found := strings.Cut(clean, "/")
	if !found || segment != userID || userID == "" {
		return ErrForbiddenKey
	}
	return nil
}

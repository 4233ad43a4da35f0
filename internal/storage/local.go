package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// localBackend writes uploads under <dir>/<kind>/ and returns a
// server-relative URL, mirroring how the public site serves /images/.
type localBackend struct {
	dir    string
	logger zerolog.Logger
}

// NewLocal creates a filesystem-backed storage backend rooted at dir.
func NewLocal(dir string, logger zerolog.Logger) Backend {
	return &localBackend{
		dir:    dir,
		logger: logger.With().Str("component", "local-storage").Logger(),
	}
}

func (l *localBackend) Name() string { return "local" }

// Store writes the upload to disk under a fresh uuid-based name. The
// original filename only contributes its extension, never a path.
func (l *localBackend) Store(ctx context.Context, up Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	kind := filepath.Base(up.Kind)
	targetDir := filepath.Join(l.dir, kind)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		l.logger.Error().Err(err).Str("dir", targetDir).Msg("failed to create upload directory")
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(up.Filename))
	name := uuid.New().String() + ext
	path := filepath.Join(targetDir, name)

	if err := os.WriteFile(path, up.Data, 0o644); err != nil {
		l.logger.Error().Err(err).Str("path", path).Msg("failed to write upload")
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	l.logger.Debug().Str("path", path).Int("bytes", len(up.Data)).Msg("upload written")
	return fmt.Sprintf("/images/%s/%s", kind, name), nil
}

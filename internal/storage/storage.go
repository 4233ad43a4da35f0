package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Upload is an image file accepted from the admin dashboard, already
// validated for type and size at the HTTP boundary.
type Upload struct {
	Filename    string
	ContentType string
	Kind        string // "products" or "banners"
	Data        []byte
}

// ErrTooLarge is returned by a backend whose own size ceiling is tighter
// than the general upload limit. The cascade moves on to the next backend.
var ErrTooLarge = errors.New("upload exceeds backend size limit")

// Backend stores an image and returns a URL usable in image_url columns.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// Store persists the upload and returns its public URL.
	Store(ctx context.Context, up Upload) (string, error)
}

// Cascade tries an ordered list of backends and returns the first URL
// obtained. Backends are independent; a failure in one only means the
// next is consulted.
type Cascade struct {
	backends []Backend
	logger   zerolog.Logger
}

// NewCascade creates a cascade over the given backends, tried in order.
func NewCascade(logger zerolog.Logger, backends ...Backend) *Cascade {
	return &Cascade{
		backends: backends,
		logger:   logger.With().Str("component", "storage-cascade").Logger(),
	}
}

// Store runs through the backends until one succeeds. The error of the
// last backend is returned when all of them fail.
func (c *Cascade) Store(ctx context.Context, up Upload) (string, error) {
	if len(c.backends) == 0 {
		return "", errors.New("no storage backends configured")
	}

	var lastErr error
	for _, b := range c.backends {
		url, err := b.Store(ctx, up)
		if err == nil {
			c.logger.Info().
				Str("backend", b.Name()).
				Str("filename", up.Filename).
				Msg("upload stored")
			return url, nil
		}

		c.logger.Warn().
			Err(err).
			Str("backend", b.Name()).
			Str("filename", up.Filename).
			Msg("storage backend failed, trying next")
		lastErr = err
	}

	return "", fmt.Errorf("all storage backends failed: %w", lastErr)
}

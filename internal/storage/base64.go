package storage

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"
)

// base64Backend embeds small images directly as data URLs so the menu
// keeps working with no disk and no bucket. Only suitable for small
// files, hence the tighter ceiling.
type base64Backend struct {
	maxSize int64
	logger  zerolog.Logger
}

// NewBase64 creates an inline data-URL backend capped at maxSize bytes.
func NewBase64(maxSize int64, logger zerolog.Logger) Backend {
	return &base64Backend{
		maxSize: maxSize,
		logger:  logger.With().Str("component", "base64-storage").Logger(),
	}
}

func (b *base64Backend) Name() string { return "base64" }

// Store encodes the upload as a data URL. Uploads over the backend's
// ceiling fail with ErrTooLarge so the cascade can report the failure.
func (b *base64Backend) Store(ctx context.Context, up Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if int64(len(up.Data)) > b.maxSize {
		b.logger.Warn().
			Str("filename", up.Filename).
			Int("bytes", len(up.Data)).
			Int64("max", b.maxSize).
			Msg("upload too large for inline encoding")
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(up.Data), b.maxSize)
	}

	encoded := base64.StdEncoding.EncodeToString(up.Data)
	return fmt.Sprintf("data:%s;base64,%s", up.ContentType, encoded), nil
}

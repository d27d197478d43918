package fileconv

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Option configures a conversion.
type Option func(*config)

type config struct {
	contentType string
	delay       time.Duration
}

// WithContentType overrides MIME sniffing with an explicit content type.
func WithContentType(ct string) Option {
	return func(c *config) { c.contentType = ct }
}

// WithDelay inserts an artificial pause before the result is returned.
// The pause honors context cancellation. Default: none.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// ToDataURL reads all of r and returns its content as a base64 data URL,
// data:<mime>;base64,<payload>. The MIME type is sniffed from the leading
// bytes unless WithContentType is given. A read failure propagates.
func ToDataURL(ctx context.Context, r io.Reader, opts ...Option) (string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("fileconv: read failed: %w", err)
	}

	ct := cfg.contentType
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	if cfg.delay > 0 {
		timer := time.NewTimer(cfg.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return fmt.Sprintf("data:%s;base64,%s", ct, base64.StdEncoding.EncodeToString(data)), nil
}

// internal/core/ports/report_storage.go
package ports

import (
	"context"
	"io"
	"time"
)

// ReportStorage holds generated report files
type ReportStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

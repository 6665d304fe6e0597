// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	journal   ports.CheckoutJournal
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(journal ports.CheckoutJournal, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		journal:   journal,
		retention: retention,
		now:       time.Now,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupJournal removes checkout journal rows older than the retention window
func (p *CleanupProcessor) CleanupJournal(ctx context.Context, t *asynq.Task) error {
	if p.retention <= 0 {
		return fmt.Errorf("journal retention must be positive, got %s: %w", p.retention, asynq.SkipRetry)
	}

	cutoff := p.now().UTC().Add(-p.retention)
	p.logger.InfoContext(ctx, "cleaning up checkout journal",
		slog.Time("cutoff", cutoff))

	deleted, err := p.journal.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup checkout journal: %w", err)
	}

	p.logger.InfoContext(ctx, "checkout journal cleaned up",
		slog.Int64("rows_deleted", deleted))

	return nil
}

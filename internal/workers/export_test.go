package workers

import (
	"log/slog"
	"time"

	"github.com/ammerola/kasir-rental/internal/core/ports"
)

func (p *ReportProcessor) SetClock(now func() time.Time) { p.now = now }

func (p *CleanupProcessor) SetClock(now func() time.Time) { p.now = now }

func NewReportQueueWith(client taskEnqueuer, inspector taskInspector, cache ports.CacheRepository,
	opts QueueOptions, logger *slog.Logger) *ReportQueue {
	return newReportQueue(client, inspector, cache, opts, logger)
}

// internal/workers/report_queue.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// StateCompleted is reported once a report's download URL is available
const StateCompleted = "completed"

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type taskInspector interface {
	GetTaskInfo(queue, id string) (*asynq.TaskInfo, error)
}

// QueueOptions controls how report tasks are enqueued
type QueueOptions struct {
	Queue     string
	MaxRetry  int
	Timeout   time.Duration
	Retention time.Duration
}

// ReportQueue enqueues report tasks on asynq and answers status queries
// from the report cache, falling back to the asynq inspector
type ReportQueue struct {
	client    taskEnqueuer
	inspector taskInspector
	cache     ports.CacheRepository
	opts      QueueOptions
	logger    *slog.Logger
}

var _ ports.ReportQueue = (*ReportQueue)(nil)

// NewReportQueue creates a report queue over an asynq client and inspector
func NewReportQueue(client *asynq.Client, inspector *asynq.Inspector, cache ports.CacheRepository,
	opts QueueOptions, logger *slog.Logger) *ReportQueue {
	return newReportQueue(client, inspector, cache, opts, logger)
}

func newReportQueue(client taskEnqueuer, inspector taskInspector, cache ports.CacheRepository,
	opts QueueOptions, logger *slog.Logger) *ReportQueue {
	if opts.Queue == "" {
		opts.Queue = "default"
	}
	if opts.MaxRetry <= 0 {
		opts.MaxRetry = 3
	}
	return &ReportQueue{
		client:    client,
		inspector: inspector,
		cache:     cache,
		opts:      opts,
		logger:    logger.With(slog.String("component", "report_queue")),
	}
}

// EnqueueOpenRentalsReport schedules an open rentals report and returns its ID
func (q *ReportQueue) EnqueueOpenRentalsReport(ctx context.Context, storeID int64, requestedBy string) (string, error) {
	if storeID <= 0 {
		return "", fmt.Errorf("%w: Store ID must be a positive integer", domain.ErrInvalidArgument)
	}

	payload := OpenRentalsReportPayload{
		ReportID:    uuid.New().String(),
		StoreID:     storeID,
		RequestedBy: requestedBy,
	}

	opts := []asynq.Option{
		asynq.TaskID(payload.ReportID),
		asynq.Queue(q.opts.Queue),
		asynq.MaxRetry(q.opts.MaxRetry),
	}
	if q.opts.Timeout > 0 {
		opts = append(opts, asynq.Timeout(q.opts.Timeout))
	}
	if q.opts.Retention > 0 {
		opts = append(opts, asynq.Retention(q.opts.Retention))
	}

	task, err := NewOpenRentalsReportTask(payload)
	if err != nil {
		return "", err
	}

	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue report: %w", err)
	}

	q.logger.InfoContext(ctx, "report enqueued",
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue),
		slog.Int64("store_id", storeID))

	return info.ID, nil
}

// ReportStatus reports where a report task is. A cached result wins over
// the inspector so finished reports stay visible after asynq drops them.
func (q *ReportQueue) ReportStatus(ctx context.Context, taskID string) (*ports.ReportStatus, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, fmt.Errorf("%w: Report ID must be a UUID", domain.ErrInvalidArgument)
	}

	var result ReportResult
	if err := q.cache.Get(ctx, ReportResultKey(taskID), &result); err == nil && result.DownloadURL != "" {
		return completedStatus(taskID, result), nil
	}

	info, err := q.inspector.GetTaskInfo(q.opts.Queue, taskID)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrReportNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to inspect report task: %w", err)
	}

	status := &ports.ReportStatus{
		TaskID:    info.ID,
		State:     info.State.String(),
		LastError: info.LastErr,
	}

	var payload OpenRentalsReportPayload
	if err := json.Unmarshal(info.Payload, &payload); err == nil {
		status.StoreID = payload.StoreID
	}

	if info.State == asynq.TaskStateCompleted && len(info.Result) > 0 {
		if err := json.Unmarshal(info.Result, &result); err == nil {
			return completedStatus(taskID, result), nil
		}
	}
	if !info.CompletedAt.IsZero() {
		completedAt := info.CompletedAt.UTC()
		status.CompletedAt = &completedAt
	}

	return status, nil
}

func completedStatus(taskID string, result ReportResult) *ports.ReportStatus {
	completedAt := result.GeneratedAt.UTC()
	return &ports.ReportStatus{
		TaskID:      taskID,
		State:       StateCompleted,
		StoreID:     result.StoreID,
		DownloadURL: result.DownloadURL,
		CompletedAt: &completedAt,
	}
}

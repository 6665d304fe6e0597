package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/kasir-rental/internal/adapters/redis_adapter"
	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/workers"
	"github.com/ammerola/kasir-rental/test/helpers"
)

type fakeEnqueuer struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.task = task
	f.opts = opts

	info := &asynq.TaskInfo{Type: task.Type(), Payload: task.Payload(), State: asynq.TaskStatePending}
	for _, opt := range opts {
		switch opt.Type() {
		case asynq.TaskIDOpt:
			info.ID = opt.Value().(string)
		case asynq.QueueOpt:
			info.Queue = opt.Value().(string)
		}
	}
	return info, nil
}

type fakeInspector struct {
	infos map[string]*asynq.TaskInfo
	err   error
}

func (f *fakeInspector) GetTaskInfo(_, id string) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	info, ok := f.infos[id]
	if !ok {
		return nil, asynq.ErrTaskNotFound
	}
	return info, nil
}

func newTestQueue(t *testing.T, client *fakeEnqueuer, inspector *fakeInspector) (*workers.ReportQueue, *redis_a.Cache) {
	t.Helper()
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Minute, helpers.TestLogger())
	q := workers.NewReportQueueWith(client, inspector, cache, workers.QueueOptions{
		Queue:     "reports",
		Timeout:   2 * time.Minute,
		Retention: 24 * time.Hour,
	}, helpers.TestLogger())
	return q, cache
}

func TestReportQueue_EnqueueOpenRentalsReport(t *testing.T) {
	client := &fakeEnqueuer{}
	q, _ := newTestQueue(t, client, &fakeInspector{})

	id, err := q.EnqueueOpenRentalsReport(context.Background(), 1, "lane-1")
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, workers.TypeOpenRentalsReport, client.task.Type())

	var payload workers.OpenRentalsReportPayload
	require.NoError(t, json.Unmarshal(client.task.Payload(), &payload))
	assert.Equal(t, workers.OpenRentalsReportPayload{ReportID: id, StoreID: 1, RequestedBy: "lane-1"}, payload)

	types := map[asynq.OptionType]any{}
	for _, opt := range client.opts {
		types[opt.Type()] = opt.Value()
	}
	assert.Equal(t, "reports", types[asynq.QueueOpt])
	assert.Equal(t, 3, types[asynq.MaxRetryOpt])
	assert.Equal(t, 2*time.Minute, types[asynq.TimeoutOpt])
	assert.Equal(t, 24*time.Hour, types[asynq.RetentionOpt])
}

func TestReportQueue_EnqueueErrors(t *testing.T) {
	t.Run("invalid_store", func(t *testing.T) {
		q, _ := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{})
		_, err := q.EnqueueOpenRentalsReport(context.Background(), 0, "lane-1")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("redis_down", func(t *testing.T) {
		q, _ := newTestQueue(t, &fakeEnqueuer{err: errors.New("dial tcp: connection refused")}, &fakeInspector{})
		_, err := q.EnqueueOpenRentalsReport(context.Background(), 1, "lane-1")
		assert.ErrorContains(t, err, "failed to enqueue report")
	})
}

func TestReportQueue_ReportStatus(t *testing.T) {
	ctx := context.Background()
	generated := time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)

	t.Run("cached_result_is_completed", func(t *testing.T) {
		q, cache := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{})
		id := uuid.New().String()
		require.NoError(t, cache.Set(ctx, workers.ReportResultKey(id), workers.ReportResult{
			ReportID:    id,
			StoreID:     1,
			DownloadURL: "https://s3.local/r.xlsx",
			GeneratedAt: generated,
		}))

		status, err := q.ReportStatus(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, workers.StateCompleted, status.State)
		assert.Equal(t, "https://s3.local/r.xlsx", status.DownloadURL)
		assert.Equal(t, int64(1), status.StoreID)
		require.NotNil(t, status.CompletedAt)
		assert.True(t, generated.Equal(*status.CompletedAt))
	})

	t.Run("pending_task_from_inspector", func(t *testing.T) {
		id := uuid.New().String()
		payload, _ := json.Marshal(workers.OpenRentalsReportPayload{ReportID: id, StoreID: 2})
		q, _ := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{infos: map[string]*asynq.TaskInfo{
			id: {ID: id, State: asynq.TaskStateRetry, Payload: payload, LastErr: "backend down"},
		}})

		status, err := q.ReportStatus(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "retry", status.State)
		assert.Equal(t, int64(2), status.StoreID)
		assert.Equal(t, "backend down", status.LastError)
		assert.Empty(t, status.DownloadURL)
		assert.Nil(t, status.CompletedAt)
	})

	t.Run("completed_task_result_after_cache_expiry", func(t *testing.T) {
		id := uuid.New().String()
		result, _ := json.Marshal(workers.ReportResult{ReportID: id, StoreID: 3, DownloadURL: "https://s3.local/x.xlsx", GeneratedAt: generated})
		q, _ := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{infos: map[string]*asynq.TaskInfo{
			id: {ID: id, State: asynq.TaskStateCompleted, Result: result, CompletedAt: generated},
		}})

		status, err := q.ReportStatus(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, workers.StateCompleted, status.State)
		assert.Equal(t, "https://s3.local/x.xlsx", status.DownloadURL)
		assert.Equal(t, int64(3), status.StoreID)
	})

	t.Run("unknown_task", func(t *testing.T) {
		q, _ := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{})
		_, err := q.ReportStatus(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("malformed_id", func(t *testing.T) {
		q, _ := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{})
		_, err := q.ReportStatus(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("inspector_failure", func(t *testing.T) {
		q, _ := newTestQueue(t, &fakeEnqueuer{}, &fakeInspector{err: errors.New("redis: connection pool timeout")})
		_, err := q.ReportStatus(ctx, uuid.New().String())
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrReportNotFound)
	})
}

// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeOpenRentalsReport = "report:open_rentals"
	TypeJournalCleanup    = "journal:cleanup"
)

const reportKeyPrefix = "kasir-rental:report:"

// OpenRentalsReportPayload is the payload of a report:open_rentals task.
// ReportID doubles as the asynq task ID so status lookups and the cached
// result share one key.
type OpenRentalsReportPayload struct {
	ReportID    string `json:"report_id"`
	StoreID     int64  `json:"store_id"`
	RequestedBy string `json:"requested_by"`
}

// ReportResult is what a finished report leaves behind in the cache and
// in the task's result slot
type ReportResult struct {
	ReportID    string    `json:"report_id"`
	StoreID     int64     `json:"store_id"`
	Key         string    `json:"key"`
	DownloadURL string    `json:"download_url"`
	Rows        int       `json:"rows"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReportResultKey is the cache key of a finished report
func ReportResultKey(reportID string) string {
	return reportKeyPrefix + reportID
}

// NewOpenRentalsReportTask builds the task for payload
func NewOpenRentalsReportTask(payload OpenRentalsReportPayload, opts ...asynq.Option) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report payload: %w", err)
	}
	return asynq.NewTask(TypeOpenRentalsReport, data, opts...), nil
}

// NewJournalCleanupTask builds the periodic journal retention task
func NewJournalCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeJournalCleanup, nil)
}

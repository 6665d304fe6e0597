// internal/handlers/reports.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// ReportHandler queues store reports and reports on their progress
type ReportHandler struct {
	queue  ports.ReportQueue
	shifts ports.ShiftService
	logger *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(queue ports.ReportQueue, shifts ports.ShiftService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		queue:  queue,
		shifts: shifts,
		logger: logger.With(slog.String("handler", "reports")),
	}
}

// ReportAccepted is returned when a report is queued
type ReportAccepted struct {
	TaskID string `json:"task_id"`
	State  string `json:"state"`
}

// EnqueueOpenRentals handles POST /api/v1/reports/open-rentals for the
// store of the terminal's shift
func (h *ReportHandler) EnqueueOpenRentals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	terminal := terminalID(r)

	shift, err := currentShift(ctx, h.shifts, terminal)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	storeID, err := domain.ParseID(shift.StoreID, "Store ID")
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	requestedBy := "staff:" + shift.StaffID
	if terminal != "" {
		requestedBy += "@" + terminal
	}

	taskID, err := h.queue.EnqueueOpenRentalsReport(ctx, storeID, requestedBy)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", "/api/v1/reports/"+taskID)
	respondJSON(w, h.logger, http.StatusAccepted, ReportAccepted{TaskID: taskID, State: "pending"})
}

// GetReport handles GET /api/v1/reports/{taskId}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	status, err := h.queue.ReportStatus(r.Context(), r.PathValue("taskId"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, status)
}

// internal/handlers/shift.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/kasir-rental/internal/core/ports"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
)

// ShiftHandler opens, shows and closes the shift of a terminal
type ShiftHandler struct {
	shifts ports.ShiftService
	logger *slog.Logger
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shifts ports.ShiftService, logger *slog.Logger) *ShiftHandler {
	return &ShiftHandler{
		shifts: shifts,
		logger: logger.With(slog.String("handler", "shift")),
	}
}

// StartShiftRequest is the body of POST /api/v1/shift
type StartShiftRequest struct {
	StoreID flexibleID `json:"store_id"`
	StaffID flexibleID `json:"staff_id"`
}

// GetShift handles GET /api/v1/shift
func (h *ShiftHandler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift, err := currentShift(r.Context(), h.shifts, terminalID(r))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, shift)
}

// StartShift handles POST /api/v1/shift
func (h *ShiftHandler) StartShift(w http.ResponseWriter, r *http.Request) {
	var req StartShiftRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	shift, err := h.shifts.Start(r.Context(), terminalID(r), string(req.StoreID), string(req.StaffID))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	logger.SetShift(r.Context(), shift.StoreID, shift.StaffID)
	respondJSON(w, h.logger, http.StatusCreated, shift)
}

// EndShift handles DELETE /api/v1/shift
func (h *ShiftHandler) EndShift(w http.ResponseWriter, r *http.Request) {
	if err := h.shifts.End(r.Context(), terminalID(r)); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

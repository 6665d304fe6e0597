// internal/handlers/rentals.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// RentalHandler covers open rentals, returns, invoices and payments
type RentalHandler struct {
	rentals ports.RentalService
	shifts  ports.ShiftService
	now     func() time.Time
	logger  *slog.Logger
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentals ports.RentalService, shifts ports.ShiftService, logger *slog.Logger) *RentalHandler {
	return &RentalHandler{
		rentals: rentals,
		shifts:  shifts,
		now:     time.Now,
		logger:  logger.With(slog.String("handler", "rentals")),
	}
}

// ReturnRequest is the body of POST /api/v1/rentals/return
type ReturnRequest struct {
	RentalIDs []flexibleID `json:"rental_ids"`
}

// PaymentRequest is the body of POST /api/v1/payments
type PaymentRequest struct {
	RentalID   flexibleID  `json:"rental_id"`
	CustomerID flexibleID  `json:"customer_id"`
	Amount     json.Number `json:"amount"`
}

// ListOpenRentals handles GET /api/v1/rentals/open?q=
func (h *RentalHandler) ListOpenRentals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID := strings.TrimSpace(r.URL.Query().Get("store_id"))
	if storeID == "" {
		shift, err := currentShift(ctx, h.shifts, terminalID(r))
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveShift) {
				respondError(w, r, h.logger, http.StatusBadRequest, "store_id is required without an active shift")
				return
			}
			respondServiceError(w, r, h.logger, err)
			return
		}
		storeID = shift.StoreID
	}

	var (
		rentals []domain.Rental
		err     error
	)
	if query := strings.TrimSpace(r.URL.Query().Get("q")); query != "" {
		rentals, err = h.rentals.SearchOpenRentals(ctx, storeID, query, h.now())
	} else {
		rentals, err = h.rentals.ListOpenRentals(ctx, storeID, h.now())
	}
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, rentals)
}

// ReturnRentals handles POST /api/v1/rentals/return
func (h *RentalHandler) ReturnRentals(w http.ResponseWriter, r *http.Request) {
	var req ReturnRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	if len(req.RentalIDs) == 0 {
		respondError(w, r, h.logger, http.StatusBadRequest, "rental_ids must not be empty")
		return
	}

	ids := make([]string, len(req.RentalIDs))
	for i, id := range req.RentalIDs {
		ids[i] = string(id)
	}

	result, err := h.rentals.ReturnRentals(r.Context(), ids)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetInvoice handles GET /api/v1/invoices/{id}, where id is the rental ID
func (h *RentalHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.rentals.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, invoice)
}

// PayInvoice handles POST /api/v1/payments. The paying staff member is the
// one on the terminal's shift.
func (h *RentalHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		respondError(w, r, h.logger, http.StatusBadRequest, "amount must be a number")
		return
	}

	shift, err := currentShift(ctx, h.shifts, terminalID(r))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	result, err := h.rentals.PayInvoice(ctx, ports.PaymentInput{
		RentalID:   string(req.RentalID),
		CustomerID: string(req.CustomerID),
		StaffID:    shift.StaffID,
		Amount:     amount,
	})
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

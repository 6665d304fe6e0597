// internal/handlers/checkout.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// CheckoutHandler commits carts and lists the terminal's recent checkouts
type CheckoutHandler struct {
	checkout ports.CheckoutService
	shifts   ports.ShiftService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout ports.CheckoutService, shifts ports.ShiftService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		shifts:   shifts,
		logger:   logger.With(slog.String("handler", "checkout")),
	}
}

// CheckoutRequest is the body of POST /api/v1/checkout
type CheckoutRequest struct {
	CustomerID flexibleID        `json:"customer_id"`
	Cart       []CartItemRequest `json:"cart"`
}

// CartItemRequest is one cart line of a CheckoutRequest
type CartItemRequest struct {
	FilmID   flexibleID `json:"film_id"`
	Quantity int        `json:"qty"`
}

// Checkout handles POST /api/v1/checkout. Store and staff come from the
// terminal's shift, never from the body.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	terminal := terminalID(r)
	shift, err := currentShift(ctx, h.shifts, terminal)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	cart := make([]ports.CartItem, len(req.Cart))
	for i, item := range req.Cart {
		cart[i] = ports.CartItem{FilmID: string(item.FilmID), Quantity: item.Quantity}
	}

	result, err := h.checkout.Checkout(ctx, ports.CheckoutInput{
		TerminalID: terminal,
		CustomerID: string(req.CustomerID),
		StaffID:    shift.StaffID,
		StoreID:    shift.StoreID,
		Cart:       cart,
	})
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, result)
}

// RecentCheckouts handles GET /api/v1/checkouts/recent?limit=&store_id=
func (h *CheckoutHandler) RecentCheckouts(w http.ResponseWriter, r *http.Request) {
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

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, r, h.logger, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.checkout.RecentCheckouts(ctx, storeID, limit)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, records)
}

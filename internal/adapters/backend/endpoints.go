// internal/adapters/backend/endpoints.go
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// Statically assert that *Client implements the RentalBackend interface.
var _ ports.RentalBackend = (*Client)(nil)

func limitQuery(limit int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func (c *Client) ListStores(ctx context.Context, limit int) ([]ports.BackendStore, error) {
	var stores []ports.BackendStore
	if err := c.requestData(ctx, http.MethodGet, "stores", limitQuery(limit), nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) ListStaff(ctx context.Context, limit int) ([]ports.BackendStaff, error) {
	var staff []ports.BackendStaff
	if err := c.requestData(ctx, http.MethodGet, "staff", limitQuery(limit), nil, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (c *Client) ListCustomers(ctx context.Context, limit int) ([]ports.BackendCustomer, error) {
	var customers []ports.BackendCustomer
	if err := c.requestData(ctx, http.MethodGet, "customers", limitQuery(limit), nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) LookupCustomers(ctx context.Context, query string, limit int) ([]ports.BackendCustomerMatch, error) {
	q := limitQuery(limit)
	q.Set("query", query)

	var matches []ports.BackendCustomerMatch
	if err := c.requestData(ctx, http.MethodGet, "lookup/customers", q, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// ListFilms reads the paged film list, which nests its rows in a second data field
func (c *Client) ListFilms(ctx context.Context, limit int) ([]ports.BackendFilm, error) {
	var page struct {
		Data []ports.BackendFilm `json:"data"`
	}
	if err := c.requestData(ctx, http.MethodGet, "films", limitQuery(limit), nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (c *Client) LookupFilms(ctx context.Context, query string, limit int) ([]ports.BackendFilmMatch, error) {
	q := limitQuery(limit)
	q.Set("query", query)

	var matches []ports.BackendFilmMatch
	if err := c.requestData(ctx, http.MethodGet, "lookup/films", q, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) GetFilm(ctx context.Context, filmID int64) (*ports.BackendFilm, error) {
	var film ports.BackendFilm
	if err := c.requestData(ctx, http.MethodGet, fmt.Sprintf("films/%d", filmID), nil, nil, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

func (c *Client) GetFilmAvailability(ctx context.Context, filmID, storeID int64) (*ports.BackendAvailability, error) {
	q := url.Values{}
	q.Set("storeId", strconv.FormatInt(storeID, 10))

	var availability ports.BackendAvailability
	path := fmt.Sprintf("films/%d/availability", filmID)
	if err := c.requestData(ctx, http.MethodGet, path, q, nil, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

func (c *Client) ListFilmInventory(ctx context.Context, filmID int64, limit int) ([]ports.BackendInventory, error) {
	var units []ports.BackendInventory
	path := fmt.Sprintf("films/%d/inventories", filmID)
	if err := c.requestData(ctx, http.MethodGet, path, limitQuery(limit), nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *Client) ListOpenRentals(ctx context.Context, storeID int64, limit int) ([]ports.BackendRental, error) {
	q := limitQuery(limit)
	q.Set("storeId", strconv.FormatInt(storeID, 10))
	q.Set("status", "open")

	var rentals []ports.BackendRental
	if err := c.requestData(ctx, http.MethodGet, "rentals", q, nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (c *Client) GetInvoice(ctx context.Context, rentalID int64) (*ports.BackendInvoice, error) {
	var invoice ports.BackendInvoice
	path := fmt.Sprintf("rentals/%d/invoice", rentalID)
	if err := c.requestData(ctx, http.MethodGet, path, nil, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Checkout commits inventory units as rentals. The response data is
// optional here; callers decide what a missing rental id means.
func (c *Client) Checkout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResponse, error) {
	res, err := c.requestAPI(ctx, http.MethodPost, "rentals/checkout", nil, req)
	if err != nil {
		return nil, err
	}

	out := &ports.CheckoutResponse{Message: res.message}
	if hasData(res.data) {
		if err := decodeOptional(res, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Client) ReturnBatch(ctx context.Context, rentalIDs []int64) (*ports.ReturnBatchResponse, error) {
	body := struct {
		RentalIDs []int64 `json:"rentalIds"`
	}{RentalIDs: rentalIDs}

	var resp ports.ReturnBatchResponse
	if err := c.requestData(ctx, http.MethodPost, "rentals/return-batch", nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Updated == nil {
		resp.Updated = []int64{}
	}
	if resp.Skipped == nil {
		resp.Skipped = []int64{}
	}
	return &resp, nil
}

// CreatePayment posts the amount as a JSON number, not the quoted string
// decimal.Decimal marshals to by default.
func (c *Client) CreatePayment(ctx context.Context, req ports.PaymentRequest) error {
	body := struct {
		CustomerID int64       `json:"customerId"`
		StaffID    int64       `json:"staffId"`
		RentalID   int64       `json:"rentalId"`
		Amount     json.Number `json:"amount"`
	}{
		CustomerID: req.CustomerID,
		StaffID:    req.StaffID,
		RentalID:   req.RentalID,
		Amount:     json.Number(req.Amount.String()),
	}
	_, err := c.requestAPI(ctx, http.MethodPost, "payments", nil, body)
	return err
}

package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/kasir-rental/internal/adapters/backend"
	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
	"github.com/ammerola/kasir-rental/test/helpers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return backend.NewClient(&backend.Config{BaseURL: server.URL + "/api/v1/", Timeout: 2 * time.Second}, helpers.TestLogger())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_SuccessfulEnvelope(t *testing.T) {
	var gotPath, gotQuery, gotAccept, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"rental_id":1,"rental_date":"2026-02-10","inventory_id":101,"customer_id":5}]}`)
	})

	ctx := context.WithValue(context.Background(), logger.ContextKeyRequestID, "req-42")
	rentals, err := client.ListOpenRentals(ctx, 1, 100)

	require.NoError(t, err)
	assert.Equal(t, []ports.BackendRental{{RentalID: 1, RentalDate: "2026-02-10", InventoryID: 101, CustomerID: 5}}, rentals)
	assert.Equal(t, "/api/v1/rentals", gotPath)
	assert.Equal(t, "limit=100&status=open&storeId=1", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "req-42", gotRequestID)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantCode    string
		wantReqID   string
	}{
		{
			name:        "error_message_wins",
			status:      http.StatusNotFound,
			body:        `{"success":false,"message":"outer","error":{"code":"NOT_FOUND","message":"Film not found"},"request_id":"abc"}`,
			wantStatus:  404,
			wantMessage: "Film not found",
			wantCode:    "NOT_FOUND",
			wantReqID:   "abc",
		},
		{
			name:        "falls_back_to_envelope_message",
			status:      http.StatusConflict,
			body:        `{"success":false,"message":"Inventory already rented"}`,
			wantStatus:  409,
			wantMessage: "Inventory already rented",
		},
		{
			name:        "falls_back_to_status_text",
			status:      http.StatusInternalServerError,
			body:        `{"success":false}`,
			wantStatus:  500,
			wantMessage: "Request failed with status 500",
		},
		{
			name:        "non_envelope_body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantStatus:  502,
			wantMessage: "HTTP 502",
		},
		{
			name:        "success_false_on_2xx_is_400",
			status:      http.StatusOK,
			body:        `{"success":false,"message":"Validation failed"}`,
			wantStatus:  400,
			wantMessage: "Validation failed",
		},
		{
			name:        "missing_data_is_500",
			status:      http.StatusOK,
			body:        `{"success":true}`,
			wantStatus:  500,
			wantMessage: "Response data is empty",
		},
		{
			name:        "null_data_is_500",
			status:      http.StatusOK,
			body:        `{"success":true,"data":null}`,
			wantStatus:  500,
			wantMessage: "Response data is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.GetFilm(context.Background(), 7)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrRemoteFailure))
			var remote *domain.RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.wantStatus, remote.Status)
			assert.Equal(t, tt.wantMessage, remote.Message)
			assert.Equal(t, tt.wantCode, remote.Code)
			assert.Equal(t, tt.wantReqID, remote.RequestID)
		})
	}
}

func TestClient_TransportFailureHasStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := backend.NewClient(&backend.Config{BaseURL: baseURL}, helpers.TestLogger())
	_, err := client.ListStores(context.Background(), 100)

	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, 0, remote.Status)
	assert.NotEmpty(t, remote.Message)
}

func TestClient_ListFilmsUnwrapsNestedPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/films", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"data":[{"film_id":1,"title":"ACADEMY DINOSAUR","rental_duration":6}]}}`)
	})

	films, err := client.ListFilms(context.Background(), 20)

	require.NoError(t, err)
	assert.Equal(t, []ports.BackendFilm{{FilmID: 1, Title: "ACADEMY DINOSAUR", RentalDuration: 6}}, films)
}

func TestClient_Checkout(t *testing.T) {
	t.Run("posts_body_and_reads_rental_ids", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/rentals/checkout", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(5), body["customerId"])
			assert.Equal(t, float64(2), body["staffId"])
			assert.Equal(t, float64(1), body["storeId"])
			assert.Equal(t, []any{float64(101), float64(104)}, body["inventoryIds"])

			writeJSON(w, http.StatusCreated, `{"success":true,"message":"Rental created","data":{"rental_ids":[5001,5002]}}`)
		})

		resp, err := client.Checkout(context.Background(), ports.CheckoutRequest{
			CustomerID: 5, StaffID: 2, StoreID: 1, InventoryIDs: []int64{101, 104},
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{5001, 5002}, resp.RentalIDs)
		assert.Equal(t, "Rental created", resp.Message)
	})

	t.Run("missing_data_is_not_an_error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"success":true}`)
		})

		resp, err := client.Checkout(context.Background(), ports.CheckoutRequest{})

		require.NoError(t, err)
		assert.Empty(t, resp.RentalIDs)
	})
}

func TestClient_ReturnBatchAndPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/api/v1/rentals/return-batch":
			assert.Equal(t, []any{float64(10), float64(11)}, body["rentalIds"])
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"updated":[10],"skipped":[11]}}`)
		case "/api/v1/payments":
			assert.Equal(t, 2.99, body["amount"])
			writeJSON(w, http.StatusCreated, `{"success":true,"message":"Payment recorded"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	returned, err := client.ReturnBatch(context.Background(), []int64{10, 11})
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, returned.Updated)
	assert.Equal(t, []int64{11}, returned.Skipped)

	err = client.CreatePayment(context.Background(), ports.PaymentRequest{
		CustomerID: 5, StaffID: 1, RentalID: 10, Amount: decimal.RequireFromString("2.99"),
	})
	require.NoError(t, err)
}

func TestClient_InvoiceDecodesNumericAmounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rentals/10/invoice", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{
			"rental":{"rental_id":10,"rental_date":"2026-02-10T10:00:00Z"},
			"film":{"film_id":7,"title":"ACE GOLDFINGER","rental_rate":4.99},
			"customer":{"customer_id":5,"first_name":"Mary","last_name":"Smith"},
			"summary":{"total_paid":2,"amount_due":2.99}}}`)
	})

	invoice, err := client.GetInvoice(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(7), invoice.Film.FilmID)
	assert.True(t, invoice.Film.RentalRate.Equal(decimal.RequireFromString("4.99")))
	assert.True(t, invoice.Summary.AmountDue.Equal(decimal.RequireFromString("2.99")))
}

func TestClient_RateLimiterHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
	}))
	t.Cleanup(server.Close)
	client := backend.NewClient(&backend.Config{BaseURL: server.URL, RateLimit: 0.001, Burst: 1}, helpers.TestLogger())

	_, err := client.ListStores(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.ListStores(ctx, 1)

	assert.ErrorIs(t, err, domain.ErrRemoteFailure)
}

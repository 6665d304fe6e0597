//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/kasir-rental/internal/adapters/backend"
	"github.com/ammerola/kasir-rental/internal/adapters/db"
	redis_a "github.com/ammerola/kasir-rental/internal/adapters/redis_adapter"
	"github.com/ammerola/kasir-rental/internal/core/services"
	"github.com/ammerola/kasir-rental/internal/handlers"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
	"github.com/ammerola/kasir-rental/test/helpers"
)

const terminal = "lane-e2e"

type CheckoutE2ESuite struct {
	suite.Suite
	rental    *fakeRentalAPI
	upstream  *httptest.Server
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *CheckoutE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.rental = newFakeRentalAPI()
	s.upstream = httptest.NewServer(s.rental.routes())
	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *CheckoutE2ESuite) TearDownSuite() {
	s.server.Close()
	s.upstream.Close()
}

func (s *CheckoutE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
	s.rental.reset()
}

func (s *CheckoutE2ESuite) TestCompleteCheckoutWorkflow() {
	// 1. Without a shift the terminal cannot check out
	resp := s.makeRequest(http.MethodGet, "/shift", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// 2. Start a shift at store 1
	resp = s.makeRequest(http.MethodPost, "/shift", map[string]interface{}{"store_id": 1, "staff_id": "1"})
	s.Equal(http.StatusCreated, resp.StatusCode)
	var shift map[string]interface{}
	s.decodeResponse(resp, &shift)
	s.Equal("1", shift["storeId"])
	s.Equal("1", shift["staffId"])

	// 3. Two of the three copies of film 1 are on the shelf
	resp = s.makeRequest(http.MethodGet, "/films/1/availability", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var availability map[string]interface{}
	s.decodeResponse(resp, &availability)
	s.Equal(float64(2), availability["available"])

	// 4. Check out both copies
	resp = s.makeRequest(http.MethodPost, "/checkout", map[string]interface{}{
		"customer_id": 5,
		"cart":        []map[string]interface{}{{"film_id": 1, "qty": 2}},
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	var checkout map[string]interface{}
	s.decodeResponse(resp, &checkout)
	rentalIDs := checkout["rental_ids"].([]interface{})
	s.Len(rentalIDs, 2)
	s.Equal(rentalIDs[0], checkout["invoice_id"])
	s.ElementsMatch([]int64{101, 102}, s.rental.lastCheckout())

	// 5. A third copy is not available any more
	resp = s.makeRequest(http.MethodPost, "/checkout", map[string]interface{}{
		"customer_id": 5,
		"cart":        []map[string]interface{}{{"film_id": 1, "qty": 1}},
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	var conflict map[string]interface{}
	s.decodeResponse(resp, &conflict)
	s.Equal("INSUFFICIENT_STOCK", conflict["code"])
	s.Equal("1", conflict["film_id"])

	// 6. The checkout was journaled for the store
	resp = s.makeRequest(http.MethodGet, "/checkouts/recent?limit=5", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var recent []map[string]interface{}
	s.decodeResponse(resp, &recent)
	s.Require().Len(recent, 1)
	s.Equal(terminal, recent[0]["terminal_id"])
	s.Equal(checkout["invoice_id"], recent[0]["invoice_id"])

	// 7. Open rentals now list the new rentals alongside the older one
	resp = s.makeRequest(http.MethodGet, "/rentals/open", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var open []map[string]interface{}
	s.decodeResponse(resp, &open)
	s.Len(open, 3)

	// 8. Return the new rentals
	resp = s.makeRequest(http.MethodPost, "/rentals/return", map[string]interface{}{"rental_ids": rentalIDs})
	s.Equal(http.StatusOK, resp.StatusCode)
	var returned map[string][]string
	s.decodeResponse(resp, &returned)
	s.Len(returned["returned"], 2)
	s.Empty(returned["skipped"])

	// 9. Both copies are available again
	resp = s.makeRequest(http.MethodGet, "/films/1/availability", nil)
	s.decodeResponse(resp, &availability)
	s.Equal(float64(2), availability["available"])

	// 10. End the shift
	resp = s.makeRequest(http.MethodDelete, "/shift", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodGet, "/shift", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *CheckoutE2ESuite) TestPaymentWorkflow() {
	resp := s.makeRequest(http.MethodPost, "/shift", map[string]interface{}{"store_id": 1, "staff_id": 1})
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodGet, "/invoices/9001", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var invoice map[string]interface{}
	s.decodeResponse(resp, &invoice)
	s.Equal("9001", invoice["rental_id"])
	s.Equal("3.99", invoice["due"])

	resp = s.makeRequest(http.MethodPost, "/payments", map[string]interface{}{
		"rental_id":   "9001",
		"customer_id": 9,
		"amount":      json.Number("1.99"),
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	var payment map[string]interface{}
	s.decodeResponse(resp, &payment)
	s.Equal("1.99", payment["paid"])
	s.Equal("2", payment["due"])
}

func (s *CheckoutE2ESuite) TestConcurrentShiftsOnSeparateTerminals() {
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := s.newRequest(http.MethodPost, "/shift", map[string]interface{}{"store_id": 1, "staff_id": 1})
			req.Header.Set("X-Terminal-ID", fmt.Sprintf("lane-%d", idx))
			resp, err := s.client.Do(req)
			if s.NoError(err) {
				s.Equal(http.StatusCreated, resp.StatusCode)
				resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		req := s.newRequest(http.MethodGet, "/shift", nil)
		req.Header.Set("X-Terminal-ID", fmt.Sprintf("lane-%d", i))
		resp, err := s.client.Do(req)
		s.Require().NoError(err)
		s.Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}

func (s *CheckoutE2ESuite) TestHealthCheck() {
	resp := s.makeRequest(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])
	s.Contains(health, "services")

	services := health["services"].(map[string]interface{})
	s.Contains(services, "database")
	s.Contains(services, "redis")
	s.Contains(services, "backend")
}

// Helper methods

func (s *CheckoutE2ESuite) startTestServer() *httptest.Server {
	log := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()

	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, log)
	shiftStore := redis_a.NewShiftStore(s.testRedis.Client, cfg.Redis.ShiftTTL, log)
	rentalBackend := backend.NewClient(&backend.Config{
		BaseURL: s.upstream.URL + "/api/v1/",
		Timeout: 5 * time.Second,
	}, log)
	journal := db.NewJournalRepository(s.testDB.Database, log)

	catalog := services.NewCatalogService(rentalBackend, cache, cfg.Redis.ListTTL, log)
	shifts := services.NewShiftService(shiftStore, rentalBackend, log)
	checkout := services.NewCheckoutService(rentalBackend, journal, cache, log)
	rentals := services.NewRentalService(rentalBackend, cache, log)

	router := handlers.NewRouter(handlers.Handlers{
		Health: handlers.NewHealthHandler(handlers.HealthDeps{
			Database: s.testDB.Database,
			Redis:    s.testRedis.Client,
			Cache:    cache,
			Backend:  rentalBackend,
		}, cfg, log),
		Catalog:  handlers.NewCatalogHandler(catalog, shifts, log),
		Shift:    handlers.NewShiftHandler(shifts, log),
		Checkout: handlers.NewCheckoutHandler(checkout, shifts, log),
		Rentals:  handlers.NewRentalHandler(rentals, shifts, log),
	}, cfg, logger.NewLogger(&logger.LogConfig{Level: "error", Format: "json", Output: "stderr"}))

	return httptest.NewServer(router)
}

func (s *CheckoutE2ESuite) newRequest(method, path string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Terminal-ID", terminal)
	return req
}

func (s *CheckoutE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	resp, err := s.client.Do(s.newRequest(method, path, body))
	s.Require().NoError(err)
	return resp
}

func (s *CheckoutE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestCheckoutE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(CheckoutE2ESuite))
}

// fakeRentalAPI is a small in-memory rental REST API: one store, one
// staff member, film 1 with three copies of which one is rented out.
type fakeRentalAPI struct {
	mu         sync.Mutex
	open       map[int64]int64 // rental id -> inventory id
	nextRental int64
	checkedOut []int64
	paid       map[int64]decimal.Decimal
}

func newFakeRentalAPI() *fakeRentalAPI {
	f := &fakeRentalAPI{}
	f.reset()
	return f
}

func (f *fakeRentalAPI) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = map[int64]int64{9001: 103}
	f.nextRental = 10000
	f.checkedOut = nil
	f.paid = map[int64]decimal.Decimal{}
}

func (f *fakeRentalAPI) lastCheckout() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.checkedOut...)
}

var rentalRate = decimal.RequireFromString("3.99")

var fakeInventory = []map[string]int64{
	{"inventory_id": 101, "film_id": 1, "store_id": 1},
	{"inventory_id": 102, "film_id": 1, "store_id": 1},
	{"inventory_id": 103, "film_id": 1, "store_id": 1},
}

func (f *fakeRentalAPI) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/stores", func(w http.ResponseWriter, r *http.Request) {
		ok(w, []map[string]int64{{"store_id": 1, "manager_staff_id": 1}})
	})
	mux.HandleFunc("GET /api/v1/staff", func(w http.ResponseWriter, r *http.Request) {
		ok(w, []map[string]interface{}{
			{"staff_id": 1, "first_name": "Mike", "last_name": "Hillyer", "store_id": 1, "active": true},
		})
	})
	mux.HandleFunc("GET /api/v1/films/{id}", func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]interface{}{"film_id": 1, "title": "ACADEMY DINOSAUR", "rental_duration": 6})
	})
	mux.HandleFunc("GET /api/v1/films/{id}/inventories", func(w http.ResponseWriter, r *http.Request) {
		ok(w, fakeInventory)
	})
	mux.HandleFunc("GET /api/v1/films/{id}/availability", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ok(w, map[string]int{"film_id": 1, "total": len(fakeInventory), "available": len(fakeInventory) - len(f.open)})
	})
	mux.HandleFunc("GET /api/v1/rentals", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		rows := make([]map[string]interface{}, 0, len(f.open))
		for rentalID, inventoryID := range f.open {
			rows = append(rows, map[string]interface{}{
				"rental_id":    rentalID,
				"rental_date":  "2026-02-10T10:00:00Z",
				"inventory_id": inventoryID,
				"customer_id":  9,
			})
		}
		ok(w, rows)
	})
	mux.HandleFunc("GET /api/v1/rentals/{id}/invoice", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.mu.Lock()
		paid := f.paid[id]
		f.mu.Unlock()
		ok(w, map[string]interface{}{
			"rental":   map[string]interface{}{"rental_id": id, "rental_date": "2026-02-10T10:00:00Z"},
			"film":     map[string]interface{}{"film_id": 1, "title": "ACADEMY DINOSAUR", "rental_rate": rentalRate},
			"customer": map[string]interface{}{"customer_id": 9, "first_name": "MARY", "last_name": "SMITH"},
			"summary":  map[string]interface{}{"total_paid": paid, "amount_due": rentalRate.Sub(paid)},
		})
	})
	mux.HandleFunc("POST /api/v1/rentals/checkout", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			InventoryIDs []int64 `json:"inventoryIds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "invalid body")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		rentalIDs := make([]int64, 0, len(req.InventoryIDs))
		for _, inventoryID := range req.InventoryIDs {
			f.nextRental++
			f.open[f.nextRental] = inventoryID
			rentalIDs = append(rentalIDs, f.nextRental)
		}
		f.checkedOut = req.InventoryIDs
		writeEnvelope(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Rentals created",
			"data":    map[string]interface{}{"rental_ids": rentalIDs},
		})
	})
	mux.HandleFunc("POST /api/v1/rentals/return-batch", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RentalIDs []int64 `json:"rentalIds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "invalid body")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		updated, skipped := []int64{}, []int64{}
		for _, id := range req.RentalIDs {
			if _, found := f.open[id]; found {
				delete(f.open, id)
				updated = append(updated, id)
			} else {
				skipped = append(skipped, id)
			}
		}
		ok(w, map[string][]int64{"updated": updated, "skipped": skipped})
	})
	mux.HandleFunc("POST /api/v1/payments", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RentalID int64           `json:"rentalId"`
			Amount   decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, http.StatusBadRequest, "invalid body")
			return
		}

		f.mu.Lock()
		f.paid[req.RentalID] = f.paid[req.RentalID].Add(req.Amount)
		f.mu.Unlock()
		writeEnvelope(w, http.StatusCreated, map[string]interface{}{"success": true, "message": "Payment recorded"})
	})

	return mux
}

func ok(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true, "data": data})
}

func fail(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, map[string]interface{}{"success": false, "message": message})
}

func writeEnvelope(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

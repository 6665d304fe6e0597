// internal/workers/report_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// recentCheckoutsLimit caps the journal sheet of a report
	recentCheckoutsLimit = 100
)

var (
	openRentalsHeader     = []string{"Rental ID", "Customer", "Film", "Status", "Due Date"}
	recentCheckoutsHeader = []string{"Checkout ID", "Terminal", "Staff ID", "Customer ID", "Rentals", "Invoice", "Created At"}
)

// ReportOptions tunes where a finished report lives and for how long
type ReportOptions struct {
	PresignTTL time.Duration
	ResultTTL  time.Duration
}

// ReportProcessor renders store reports to XLSX and publishes them
type ReportProcessor struct {
	rentals ports.RentalService
	journal ports.CheckoutJournal
	storage ports.ReportStorage
	cache   ports.CacheRepository
	opts    ReportOptions
	now     func() time.Time
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor. journal may be nil,
// in which case reports carry no recent checkouts sheet.
func NewReportProcessor(rentals ports.RentalService, journal ports.CheckoutJournal, storage ports.ReportStorage,
	cache ports.CacheRepository, opts ReportOptions, logger *slog.Logger) *ReportProcessor {
	if opts.PresignTTL <= 0 {
		opts.PresignTTL = 15 * time.Minute
	}
	if opts.ResultTTL <= 0 {
		opts.ResultTTL = 24 * time.Hour
	}
	return &ReportProcessor{
		rentals: rentals,
		journal: journal,
		storage: storage,
		cache:   cache,
		opts:    opts,
		now:     time.Now,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// ProcessOpenRentalsReport builds the open rentals workbook of a store,
// uploads it and caches a presigned download URL under the report ID
func (p *ReportProcessor) ProcessOpenRentalsReport(ctx context.Context, t *asynq.Task) error {
	var payload OpenRentalsReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.StoreID <= 0 {
		return fmt.Errorf("report payload has no store: %w", asynq.SkipRetry)
	}
	if payload.ReportID == "" {
		if id, ok := asynq.GetTaskID(ctx); ok {
			payload.ReportID = id
		} else {
			payload.ReportID = uuid.New().String()
		}
	}

	now := p.now().UTC()
	p.logger.InfoContext(ctx, "generating open rentals report",
		slog.String("report_id", payload.ReportID),
		slog.Int64("store_id", payload.StoreID),
		slog.String("requested_by", payload.RequestedBy))

	rentals, err := p.rentals.ListOpenRentals(ctx, strconv.FormatInt(payload.StoreID, 10), now)
	if err != nil {
		return fmt.Errorf("failed to load open rentals: %w", err)
	}

	var checkouts []domain.CheckoutRecord
	if p.journal != nil {
		checkouts, err = p.journal.ListRecent(ctx, payload.StoreID, recentCheckoutsLimit)
		if err != nil {
			// The journal sheet is supplementary
			p.logger.WarnContext(ctx, "failed to load recent checkouts",
				slog.Int64("store_id", payload.StoreID),
				slog.String("error", err.Error()))
			checkouts = nil
		}
	}

	workbook, err := buildOpenRentalsWorkbook(rentals, checkouts, p.journal != nil)
	if err != nil {
		return err
	}

	key := reportObjectKey(payload.StoreID, now)
	if err := p.storage.Upload(ctx, key, bytes.NewReader(workbook), xlsxContentType); err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := p.storage.PresignGet(ctx, key, p.opts.PresignTTL)
	if err != nil {
		return fmt.Errorf("failed to presign report: %w", err)
	}

	result := ReportResult{
		ReportID:    payload.ReportID,
		StoreID:     payload.StoreID,
		Key:         key,
		DownloadURL: url,
		Rows:        len(rentals),
		GeneratedAt: now,
	}

	if err := p.cache.SetWithTTL(ctx, ReportResultKey(payload.ReportID), result, p.opts.ResultTTL); err != nil {
		return fmt.Errorf("failed to cache report result: %w", err)
	}

	if w := t.ResultWriter(); w != nil {
		data, _ := json.Marshal(result)
		if _, err := w.Write(data); err != nil {
			p.logger.WarnContext(ctx, "failed to write task result",
				slog.String("report_id", payload.ReportID),
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "open rentals report completed",
		slog.String("report_id", payload.ReportID),
		slog.String("key", key),
		slog.Int("rentals", len(rentals)),
		slog.Int("checkouts", len(checkouts)))

	return nil
}

func reportObjectKey(storeID int64, now time.Time) string {
	return fmt.Sprintf("reports/open-rentals/%d/%s-%s.xlsx", storeID, now.Format(domain.DateLayout), uuid.New().String())
}

// buildOpenRentalsWorkbook renders the rentals sheet and, when withJournal
// is set, a second sheet of recent checkouts
func buildOpenRentalsWorkbook(rentals []domain.Rental, checkouts []domain.CheckoutRecord, withJournal bool) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Open Rentals")
	if err != nil {
		return nil, fmt.Errorf("failed to add rentals sheet: %w", err)
	}
	addHeaderRow(sheet, openRentalsHeader)
	for _, r := range rentals {
		addRow(sheet, r.ID, r.CustomerName, r.FilmTitle, string(r.Status), r.DueDate)
	}

	if withJournal {
		sheet, err = file.AddSheet("Recent Checkouts")
		if err != nil {
			return nil, fmt.Errorf("failed to add checkouts sheet: %w", err)
		}
		addHeaderRow(sheet, recentCheckoutsHeader)
		for _, c := range checkouts {
			addRow(sheet,
				c.ID,
				c.TerminalID,
				strconv.FormatInt(c.StaffID, 10),
				strconv.FormatInt(c.CustomerID, 10),
				joinIDs(c.RentalIDs),
				c.InvoiceID,
				c.CreatedAt.UTC().Format(time.RFC3339))
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addHeaderRow(sheet *xlsx.Sheet, titles []string) {
	style := xlsx.NewStyle()
	style.Font.Bold = true
	style.ApplyFont = true

	row := sheet.AddRow()
	for _, title := range titles {
		cell := row.AddCell()
		cell.SetString(title)
		cell.SetStyle(style)
	}
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

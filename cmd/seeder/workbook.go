package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

// journalSheet is the sheet report workbooks carry recent checkouts in
const journalSheet = "Recent Checkouts"

// Column order of the journal sheet
const (
	colCheckoutID = iota
	colTerminal
	colStaffID
	colCustomerID
	colRentals
	colInvoice
	colCreatedAt
)

// WorkbookReader turns the journal sheet of report workbooks back into
// checkout records
type WorkbookReader struct {
	logger *slog.Logger
}

func NewWorkbookReader(logger *slog.Logger) *WorkbookReader {
	return &WorkbookReader{logger: logger}
}

// ReadFile loads one workbook. The store comes from the directory the
// report was uploaded under (reports/open-rentals/<store>/...) unless
// fallbackStore is set.
func (r *WorkbookReader) ReadFile(path string, fallbackStore int64) ([]domain.CheckoutRecord, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	storeID := fallbackStore
	if storeID <= 0 {
		storeID, err = storeFromPath(path)
		if err != nil {
			return nil, err
		}
	}
	return r.read(file, storeID)
}

// ReadBinary loads a workbook already held in memory
func (r *WorkbookReader) ReadBinary(content []byte, storeID int64) ([]domain.CheckoutRecord, error) {
	file, err := xlsx.OpenBinary(content)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return r.read(file, storeID)
}

func (r *WorkbookReader) read(file *xlsx.File, storeID int64) ([]domain.CheckoutRecord, error) {
	sheet, ok := file.Sheet[journalSheet]
	if !ok {
		return nil, nil
	}

	var records []domain.CheckoutRecord
	rowIdx := 0
	err := sheet.ForEachRow(func(row *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := row.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}

		rec, err := parseJournalRow(storeID, []string{
			get(colCheckoutID), get(colTerminal), get(colStaffID), get(colCustomerID),
			get(colRentals), get(colInvoice), get(colCreatedAt),
		})
		if err != nil {
			r.logger.Warn("skipping journal row",
				slog.Int("row", rowIdx),
				slog.String("error", err.Error()))
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return records, nil
}

func parseJournalRow(storeID int64, cells []string) (domain.CheckoutRecord, error) {
	var rec domain.CheckoutRecord

	id, err := uuid.Parse(cells[colCheckoutID])
	if err != nil {
		return rec, fmt.Errorf("invalid checkout id %q", cells[colCheckoutID])
	}
	staffID, err := domain.ParseID(cells[colStaffID], "Staff ID")
	if err != nil {
		return rec, err
	}
	customerID, err := domain.ParseID(cells[colCustomerID], "Customer ID")
	if err != nil {
		return rec, err
	}

	var rentalIDs []int64
	if raw := cells[colRentals]; raw != "" {
		rentalIDs, err = domain.ParseIDs(strings.Split(raw, ","), "Rental ID")
		if err != nil {
			return rec, err
		}
	}

	createdAt, err := time.Parse(time.RFC3339, cells[colCreatedAt])
	if err != nil {
		return rec, fmt.Errorf("invalid created at %q", cells[colCreatedAt])
	}

	terminal := cells[colTerminal]
	if terminal == "" {
		terminal = "default"
	}

	return domain.CheckoutRecord{
		ID:           id.String(),
		TerminalID:   terminal,
		StoreID:      storeID,
		StaffID:      staffID,
		CustomerID:   customerID,
		InventoryIDs: []int64{},
		RentalIDs:    rentalIDs,
		InvoiceID:    cells[colInvoice],
		CreatedAt:    createdAt.UTC(),
	}, nil
}

func storeFromPath(path string) (int64, error) {
	dir := filepath.Base(filepath.Dir(path))
	id, err := strconv.ParseInt(dir, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("cannot tell the store of %s; pass -store", path)
	}
	return id, nil
}

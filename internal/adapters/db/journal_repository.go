// internal/adapters/db/journal_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

const journalTable = "checkout_journal"

var journalColumns = []string{
	"id", "terminal_id", "store_id", "staff_id", "customer_id",
	"inventory_ids", "rental_ids", "invoice_id", "created_at",
}

// querier is the slice of *Database the journal needs
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// JournalRepository implements ports.CheckoutJournal on Postgres
type JournalRepository struct {
	db     querier
	now    func() time.Time
	logger *slog.Logger
}

var _ ports.CheckoutJournal = (*JournalRepository)(nil)

// NewJournalRepository creates a new checkout journal repository
func NewJournalRepository(db querier, logger *slog.Logger) *JournalRepository {
	return &JournalRepository{
		db:     db,
		now:    time.Now,
		logger: logger.With(slog.String("repository", "checkout_journal")),
	}
}

// Record appends a committed checkout. A missing ID or timestamp is filled in.
func (r *JournalRepository) Record(ctx context.Context, record *domain.CheckoutRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}
	if record.TerminalID == "" {
		record.TerminalID = "default"
	}

	query, args, err := insertRecordQuery(record)
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record checkout: %w", err)
	}

	r.logger.DebugContext(ctx, "checkout journaled",
		slog.String("id", record.ID),
		slog.Int64("store_id", record.StoreID))
	return nil
}

// ListRecent returns a store's latest checkouts, newest first
func (r *JournalRepository) ListRecent(ctx context.Context, storeID int64, limit int) ([]domain.CheckoutRecord, error) {
	query, args, err := listRecentQuery(storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkout journal: %w", err)
	}
	defer rows.Close()

	records := []domain.CheckoutRecord{}
	for rows.Next() {
		var rec domain.CheckoutRecord
		var id uuid.UUID
		if err := rows.Scan(
			&id, &rec.TerminalID, &rec.StoreID, &rec.StaffID, &rec.CustomerID,
			&rec.InventoryIDs, &rec.RentalIDs, &rec.InvoiceID, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan checkout record: %w", err)
		}
		rec.ID = id.String()
		rec.CreatedAt = rec.CreatedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return records, nil
}

// DeleteOlderThan prunes records created before cutoff and returns how many went
func (r *JournalRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := deleteOlderThanQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to prune checkout journal: %w", err)
	}

	r.logger.InfoContext(ctx, "checkout journal pruned",
		slog.Time("cutoff", cutoff),
		slog.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func insertRecordQuery(record *domain.CheckoutRecord) (string, []interface{}, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return "", nil, fmt.Errorf("invalid record id %q: %w", record.ID, err)
	}
	return squirrel.Insert(journalTable).
		Columns(journalColumns...).
		Values(
			id, record.TerminalID, record.StoreID, record.StaffID, record.CustomerID,
			nonNil(record.InventoryIDs), nonNil(record.RentalIDs), record.InvoiceID, record.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listRecentQuery(storeID int64, limit int) (string, []interface{}, error) {
	qb := squirrel.Select(journalColumns...).
		From(journalTable).
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	return qb.ToSql()
}

func deleteOlderThanQuery(cutoff time.Time) (string, []interface{}, error) {
	return squirrel.Delete(journalTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

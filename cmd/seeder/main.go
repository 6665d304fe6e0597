// cmd/seeder restores the checkout journal from downloaded report workbooks
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ammerola/kasir-rental/internal/adapters/db"
	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
)

// JournalSeeder writes restored checkout records
type JournalSeeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewJournalSeeder(pool *pgxpool.Pool, logger *slog.Logger) *JournalSeeder {
	return &JournalSeeder{db: pool, logger: logger}
}

// SaveRecords inserts records in one transaction. Records already in the
// journal are left alone; the count of new rows is returned.
func (s *JournalSeeder) SaveRecords(ctx context.Context, records []domain.CheckoutRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
			INSERT INTO checkout_journal (
				id, terminal_id, store_id, staff_id, customer_id,
				inventory_ids, rental_ids, invoice_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			) ON CONFLICT (id) DO NOTHING`,
			rec.ID, rec.TerminalID, rec.StoreID, rec.StaffID, rec.CustomerID,
			rec.InventoryIDs, rec.RentalIDs, rec.InvoiceID, rec.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var inserted int64
	for range records {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert checkout: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("saved checkouts to journal",
		slog.Int("read", len(records)),
		slog.Int64("inserted", inserted))
	return inserted, nil
}

type seederState struct {
	ProcessedFiles []string  `json:"processed_files"`
	ProcessedCount int       `json:"processed_count"`
	LastUpdate     time.Time `json:"last_update"`
}

func main() {
	var (
		reportsDir = flag.String("reports", "./reports", "Directory tree holding downloaded report workbooks")
		storeID    = flag.Int64("store", 0, "Store the workbooks belong to; defaults to each file's parent directory")
		stateFile  = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun     = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force      = flag.Bool("force", false, "Reprocess all workbooks")
	)
	flag.Parse()

	log := logger.SetupLogger(*logLevel, "json").Logger

	dbConfig := db.DefaultConfig()
	dbConfig.Host = getEnv("DB_HOST", dbConfig.Host)
	dbConfig.Port = getEnv("DB_PORT", dbConfig.Port)
	dbConfig.User = getEnv("DB_USER", dbConfig.User)
	dbConfig.Password = getEnv("DB_PASSWORD", dbConfig.Password)
	dbConfig.Database = getEnv("DB_NAME", dbConfig.Database)
	dbConfig.SSLMode = getEnv("DB_SSL_MODE", dbConfig.SSLMode)
	dbConfig.MaxConnections = 2
	dbConfig.MinConnections = 1

	ctx := context.Background()

	var seeder *JournalSeeder
	if !*dryRun {
		database, err := db.NewDatabase(ctx, dbConfig, log)
		if err != nil {
			log.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()
		seeder = NewJournalSeeder(database.Pool(), log)
	}

	reader := NewWorkbookReader(log)

	var state seederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			_ = json.Unmarshal(stateData, &state)
		}
	}

	var workbooks []string
	err := filepath.WalkDir(*reportsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xlsx") {
			workbooks = append(workbooks, path)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to find workbooks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var (
		totalFiles    int
		totalRecords  int
		totalInserted int64
		failed        []string
	)

	for i, path := range workbooks {
		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(workbooks), path)

		if !*force && slices.Contains(state.ProcessedFiles, path) {
			log.Info("skipping already processed workbook", slog.String("path", path))
			continue
		}

		records, err := reader.ReadFile(path, *storeID)
		if err != nil {
			log.Error("failed to read workbook",
				slog.String("path", path),
				slog.String("error", err.Error()))
			failed = append(failed, path)
			fmt.Printf("ERROR: Failed to read %s - %v\n", path, err)
			continue
		}
		if len(records) == 0 {
			fmt.Printf("WARNING: No journal rows in %s\n", path)
		}

		if seeder != nil {
			inserted, err := seeder.SaveRecords(ctx, records)
			if err != nil {
				log.Error("failed to save checkouts",
					slog.String("path", path),
					slog.String("error", err.Error()))
				failed = append(failed, path)
				fmt.Printf("ERROR: Failed to save %s - %v\n", path, err)
				continue
			}
			totalInserted += inserted
		}

		fmt.Printf("SUCCESS: Processed %s - %d checkouts\n", path, len(records))
		totalFiles++
		totalRecords += len(records)

		state.ProcessedFiles = append(state.ProcessedFiles, path)
		state.ProcessedCount = len(state.ProcessedFiles)
		state.LastUpdate = time.Now()

		if !*dryRun && i%10 == 0 {
			writeState(*stateFile, state, log)
		}
	}

	if !*dryRun {
		writeState(*stateFile, state, log)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("JOURNAL RESTORE SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Workbooks processed: %d\n", totalFiles)
	fmt.Printf("Checkouts read:      %d\n", totalRecords)
	fmt.Printf("Checkouts inserted:  %d\n", totalInserted)
	if len(failed) > 0 {
		fmt.Printf("\nFailed workbooks (%d):\n", len(failed))
		for _, path := range failed {
			fmt.Printf("  - %s\n", path)
		}
	}

	log.Info("journal restore completed",
		slog.Int("workbooks", totalFiles),
		slog.Int("checkouts_read", totalRecords),
		slog.Int64("checkouts_inserted", totalInserted),
		slog.Int("failed", len(failed)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

func writeState(path string, state seederState, log *slog.Logger) {
	stateData, _ := json.MarshalIndent(state, "", "  ")
	if err := os.WriteFile(path, stateData, 0644); err != nil {
		log.Warn("failed to write state file", slog.String("error", err.Error()))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// internal/core/services/shift.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// DefaultTerminalID is used when a request does not name its terminal
const DefaultTerminalID = "default"

// ShiftService keeps track of which store and staff member each terminal
// is working for.
type ShiftService struct {
	store   ports.ShiftStore
	backend ports.RentalBackend
	logger  *slog.Logger
	now     func() time.Time
}

// Statically assert that *ShiftService implements the ShiftService interface.
var _ ports.ShiftService = (*ShiftService)(nil)

// NewShiftService creates a new shift service
func NewShiftService(store ports.ShiftStore, backend ports.RentalBackend, logger *slog.Logger) *ShiftService {
	return &ShiftService{
		store:   store,
		backend: backend,
		logger:  logger.With(slog.String("service", "shift")),
		now:     time.Now,
	}
}

// Start opens a shift for the terminal, replacing any previous one.
// The staff member must be active and assigned to the store.
func (s *ShiftService) Start(ctx context.Context, terminalID, storeID, staffID string) (*domain.Shift, error) {
	parsedStore, err := domain.ParseID(storeID, "Store ID")
	if err != nil {
		return nil, err
	}
	parsedStaff, err := domain.ParseID(staffID, "Staff ID")
	if err != nil {
		return nil, err
	}

	staff, err := s.backend.ListStaff(ctx, maxLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to verify staff: %w", err)
	}

	var member *ports.BackendStaff
	for i := range staff {
		if staff[i].StaffID == parsedStaff {
			member = &staff[i]
			break
		}
	}
	switch {
	case member == nil || !member.Active:
		return nil, fmt.Errorf("%w: staff %d is not an active staff member", domain.ErrInvalidArgument, parsedStaff)
	case member.StoreID != parsedStore:
		return nil, fmt.Errorf("%w: staff %d does not work at store %d", domain.ErrInvalidArgument, parsedStaff, parsedStore)
	}

	shift := &domain.Shift{
		StoreID:   domain.FormatID(parsedStore),
		StaffID:   domain.FormatID(parsedStaff),
		StartedAt: s.now().UTC(),
	}
	terminal := normalizeTerminal(terminalID)
	if err := s.store.Save(ctx, terminal, shift); err != nil {
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	s.logger.InfoContext(ctx, "shift started",
		slog.String("terminal_id", terminal),
		slog.String("store_id", shift.StoreID),
		slog.String("staff_id", shift.StaffID))

	return shift, nil
}

// Current returns the terminal's shift or domain.ErrNoActiveShift
func (s *ShiftService) Current(ctx context.Context, terminalID string) (*domain.Shift, error) {
	return s.store.Get(ctx, normalizeTerminal(terminalID))
}

// End clears the terminal's shift. Ending without a shift is not an error.
func (s *ShiftService) End(ctx context.Context, terminalID string) error {
	terminal := normalizeTerminal(terminalID)
	if err := s.store.Clear(ctx, terminal); err != nil {
		return fmt.Errorf("failed to clear shift: %w", err)
	}
	s.logger.InfoContext(ctx, "shift ended", slog.String("terminal_id", terminal))
	return nil
}

func normalizeTerminal(terminalID string) string {
	terminalID = strings.TrimSpace(terminalID)
	if terminalID == "" {
		return DefaultTerminalID
	}
	return terminalID
}

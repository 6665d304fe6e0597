// internal/adapters/redis_adapter/shift_store.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// ShiftKeyPrefix namespaces the per-terminal shift keys
const ShiftKeyPrefix = "kasir-rental:active-shift"

// ShiftStore keeps each terminal's active shift in Redis
type ShiftStore struct {
	client *redis.Client
	// ttl bounds how long a forgotten shift survives; zero keeps it forever
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *ShiftStore implements the ShiftStore interface.
var _ ports.ShiftStore = (*ShiftStore)(nil)

// NewShiftStore creates a new Redis-backed shift store
func NewShiftStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ShiftStore {
	return &ShiftStore{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "shift_store")),
	}
}

func shiftKey(terminalID string) string {
	return ShiftKeyPrefix + ":" + terminalID
}

// Get returns the stored shift. Missing, malformed or incomplete values
// all read as domain.ErrNoActiveShift.
func (s *ShiftStore) Get(ctx context.Context, terminalID string) (*domain.Shift, error) {
	data, err := s.client.Get(ctx, shiftKey(terminalID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoActiveShift
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var shift domain.Shift
	if err := json.Unmarshal(data, &shift); err != nil || !shift.Valid() {
		s.logger.WarnContext(ctx, "ignoring malformed stored shift",
			slog.String("terminal_id", terminalID))
		return nil, domain.ErrNoActiveShift
	}
	return &shift, nil
}

// Save replaces the terminal's shift
func (s *ShiftStore) Save(ctx context.Context, terminalID string, shift *domain.Shift) error {
	data, err := json.Marshal(shift)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	if err := s.client.Set(ctx, shiftKey(terminalID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// Clear removes the terminal's shift
func (s *ShiftStore) Clear(ctx context.Context, terminalID string) error {
	if err := s.client.Del(ctx, shiftKey(terminalID)).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

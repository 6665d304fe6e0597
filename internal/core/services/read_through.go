// internal/core/services/read_through.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// readThrough fills dest from the cache or from fetch. Backend errors are
// returned untouched; cache errors fall back to calling fetch directly.
func readThrough(ctx context.Context, cache ports.CacheRepository, logger *slog.Logger,
	key string, dest interface{}, ttl time.Duration, fetch func() (interface{}, error)) error {

	if cache == nil {
		return fetchInto(dest, fetch)
	}

	var fetchErr error
	err := cache.GetOrSet(ctx, key, dest, func() (interface{}, error) {
		v, err := fetch()
		fetchErr = err
		return v, err
	}, ttl)
	if err == nil {
		return nil
	}
	if fetchErr != nil {
		return fetchErr
	}

	logger.WarnContext(ctx, "cache unavailable, fetching directly",
		slog.String("key", key),
		slog.String("error", err.Error()))
	return fetchInto(dest, fetch)
}

func fetchInto(dest interface{}, fetch func() (interface{}, error)) error {
	v, err := fetch()
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}
	return nil
}

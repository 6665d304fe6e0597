// internal/core/services/cache_keys.go
package services

import (
	"fmt"
	"strings"
	"time"
)

const (
	// lookupLimit caps customer and film search results
	lookupLimit = 20
	// maxLimit is the largest page the backend serves
	maxLimit = 100

	lookupTTL = 30 * time.Second
)

const keyPrefix = "kasir-rental"

func storesKey() string { return keyPrefix + ":stores" }

func staffKey() string { return keyPrefix + ":staff" }

func customersKey(query string) string {
	return fmt.Sprintf("%s:customers:%s", keyPrefix, normalizeKeyPart(query))
}

func filmsKey(query string) string {
	return fmt.Sprintf("%s:films:%s", keyPrefix, normalizeKeyPart(query))
}

func availabilityKey(storeID, filmID int64) string {
	return fmt.Sprintf("%s:availability:%d:%d", keyPrefix, storeID, filmID)
}

func availabilityPattern(storeID int64) string {
	return fmt.Sprintf("%s:availability:%d:*", keyPrefix, storeID)
}

// anyAvailabilityPattern covers every store; returns do not name one
func anyAvailabilityPattern() string {
	return keyPrefix + ":availability:*"
}

func openRentalsKey(storeID int64) string {
	return fmt.Sprintf("%s:open-rentals:%d", keyPrefix, storeID)
}

func openRentalsPattern() string {
	return keyPrefix + ":open-rentals:*"
}

func invoiceKey(rentalID int64) string {
	return fmt.Sprintf("%s:invoice:%d", keyPrefix, rentalID)
}

// normalizeKeyPart keeps blank lookups on one key and strips glob characters
func normalizeKeyPart(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "__default__"
	}
	return strings.NewReplacer("*", "", "?", "", "[", "", "]", "", " ", "_").Replace(q)
}

func isPattern(key string) bool {
	return strings.ContainsAny(key, "*?[")
}

// internal/core/domain/rental.go
package domain

import (
	"strconv"
	"strings"
	"time"
)

// RentalStatus represents the state of a rental as shown to the cashier
type RentalStatus string

const (
	RentalOpen     RentalStatus = "OPEN"
	RentalLate     RentalStatus = "LATE"
	RentalReturned RentalStatus = "RETURNED"
)

// DefaultRentalDurationDays applies when a film has no usable duration
const DefaultRentalDurationDays = 3

// DateLayout is the calendar date format used in responses and reports
const DateLayout = "2006-01-02"

var rentalDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	DateLayout,
}

// Rental is an unreturned rental enriched with its invoice details
type Rental struct {
	ID           string       `json:"id"`
	CustomerID   string       `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
	FilmID       string       `json:"film_id"`
	FilmTitle    string       `json:"film_title"`
	Status       RentalStatus `json:"status"`
	DueDate      string       `json:"due_date"`
}

// ReturnResult reports which rentals the backend marked returned
type ReturnResult struct {
	Returned []string `json:"returned"`
	Skipped  []string `json:"skipped"`
}

// ParseRentalDate accepts the timestamp shapes the backend emits
func ParseRentalDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range rentalDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DueDate adds the film's rental duration to the rental start and returns
// the UTC calendar day it lands on, at midnight.
// Non-positive durations fall back to DefaultRentalDurationDays.
func DueDate(rentalDate time.Time, durationDays int) time.Time {
	if durationDays <= 0 {
		durationDays = DefaultRentalDurationDays
	}
	return calendarDay(rentalDate.AddDate(0, 0, durationDays))
}

// RentalStatusAt classifies an unreturned rental by calendar day: it is
// late once its due day is strictly before today's UTC day.
func RentalStatusAt(due, now time.Time) RentalStatus {
	if calendarDay(due).Before(calendarDay(now)) {
		return RentalLate
	}
	return RentalOpen
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date, or "-" for an unknown one
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(DateLayout)
}

// FilterRentals keeps rentals whose id, film title or customer name
// contain the query, ignoring case. A blank query keeps everything.
func FilterRentals(rentals []Rental, query string) []Rental {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return rentals
	}

	filtered := make([]Rental, 0, len(rentals))
	for _, r := range rentals {
		haystack := strings.ToLower(r.ID + " " + r.FilmTitle + " " + r.CustomerName)
		if strings.Contains(haystack, normalized) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ParseID converts an externally supplied identifier to a positive integer
func ParseID(value, field string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, &FieldError{Field: field, Value: value}
	}
	return id, nil
}

// ParseIDs parses every value or fails on the first malformed one
func ParseIDs(values []string, field string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := ParseID(v, field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FormatID renders a numeric id the way clients receive it
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FormatIDs renders a list of numeric ids
func FormatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = FormatID(id)
	}
	return out
}

// DisplayName joins a person's first and last name
func DisplayName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// FieldError describes an identifier that failed to parse
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return e.Field + " is not valid: " + strconv.Quote(e.Value)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidArgument
}

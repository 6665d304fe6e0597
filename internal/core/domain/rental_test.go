package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      int64
		wantError bool
	}{
		{name: "plain_number", value: "42", want: 42},
		{name: "surrounding_whitespace", value: "  7 ", want: 7},
		{name: "zero", value: "0", wantError: true},
		{name: "negative", value: "-3", wantError: true},
		{name: "non_numeric", value: "film-001", wantError: true},
		{name: "empty", value: "", wantError: true},
		{name: "decimal", value: "1.5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseID(tt.value, "Film ID")

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
				assert.Contains(t, err.Error(), "Film ID")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDs_StopsAtFirstInvalid(t *testing.T) {
	ids, err := domain.ParseIDs([]string{"1", "2"}, "Rental ID")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	_, err = domain.ParseIDs([]string{"1", "x", "3"}, "Rental ID")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestDueDateAndStatus(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(domain.DateLayout, s)
		require.NoError(t, err)
		return d
	}
	at := func(s string) time.Time {
		ts, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		return ts
	}

	tests := []struct {
		name       string
		rentalDate time.Time
		duration   int
		now        time.Time
		wantDue    string
		wantStatus domain.RentalStatus
	}{
		{
			name:       "late_rental",
			rentalDate: day("2026-02-10"),
			duration:   5,
			now:        day("2026-02-20"),
			wantDue:    "2026-02-15",
			wantStatus: domain.RentalLate,
		},
		{
			name:       "open_rental",
			rentalDate: day("2026-02-18"),
			duration:   5,
			now:        day("2026-02-20"),
			wantDue:    "2026-02-23",
			wantStatus: domain.RentalOpen,
		},
		{
			name:       "default_duration_when_zero",
			rentalDate: day("2026-02-10"),
			duration:   0,
			now:        day("2026-02-11"),
			wantDue:    "2026-02-13",
			wantStatus: domain.RentalOpen,
		},
		{
			name:       "default_duration_when_negative",
			rentalDate: day("2026-02-10"),
			duration:   -2,
			now:        day("2026-02-14"),
			wantDue:    "2026-02-13",
			wantStatus: domain.RentalLate,
		},
		{
			name:       "due_today_before_rental_hour",
			rentalDate: at("2026-02-10T15:00:00Z"),
			duration:   5,
			now:        at("2026-02-15T10:00:00Z"),
			wantDue:    "2026-02-15",
			wantStatus: domain.RentalOpen,
		},
		{
			name:       "due_today_after_rental_hour",
			rentalDate: at("2026-02-10T15:00:00Z"),
			duration:   5,
			now:        at("2026-02-15T16:00:00Z"),
			wantDue:    "2026-02-15",
			wantStatus: domain.RentalOpen,
		},
		{
			name:       "late_from_midnight_after_due_day",
			rentalDate: at("2026-02-10T15:00:00Z"),
			duration:   5,
			now:        at("2026-02-16T00:00:00Z"),
			wantDue:    "2026-02-15",
			wantStatus: domain.RentalLate,
		},
		{
			name:       "due_day_follows_utc_not_local_offset",
			rentalDate: at("2026-02-10T23:30:00-05:00"),
			duration:   1,
			now:        at("2026-02-12T12:00:00Z"),
			wantDue:    "2026-02-12",
			wantStatus: domain.RentalOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := domain.DueDate(tt.rentalDate, tt.duration)
			assert.Equal(t, tt.wantDue, domain.FormatDate(due))
			assert.Equal(t, tt.wantStatus, domain.RentalStatusAt(due, tt.now))
		})
	}
}

func TestParseRentalDate(t *testing.T) {
	for _, value := range []string{
		"2026-02-10",
		"2026-02-10 08:30:00",
		"2026-02-10T08:30:00",
		"2026-02-10T08:30:00Z",
		"2026-02-10T08:30:00.123+00:00",
	} {
		t.Run(value, func(t *testing.T) {
			parsed, ok := domain.ParseRentalDate(value)
			require.True(t, ok)
			assert.Equal(t, "2026-02-10", domain.FormatDate(parsed))
		})
	}

	_, ok := domain.ParseRentalDate("not a date")
	assert.False(t, ok)
	assert.Equal(t, "-", domain.FormatDate(time.Time{}))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Budi Santoso", domain.DisplayName("Budi", "Santoso"))
	assert.Equal(t, "Budi", domain.DisplayName("Budi", ""))
	assert.Equal(t, "Santoso", domain.DisplayName("", "Santoso"))
	assert.Equal(t, "", domain.DisplayName("", ""))
}

func TestFilterRentals(t *testing.T) {
	rentals := []domain.Rental{
		{ID: "123", FilmTitle: "Interstellar", CustomerName: "Budi Santoso"},
		{ID: "124", FilmTitle: "The Dark Knight", CustomerName: "Budi Santoso"},
		{ID: "125", FilmTitle: "Parasite", CustomerName: "Siti Aisyah"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "blank_query_keeps_all", query: "   ", wantIDs: []string{"123", "124", "125"}},
		{name: "matches_rental_id", query: "125", wantIDs: []string{"125"}},
		{name: "matches_title_case_insensitive", query: "dark KNIGHT", wantIDs: []string{"124"}},
		{name: "matches_customer_name", query: "budi", wantIDs: []string{"123", "124"}},
		{name: "no_match", query: "inception", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FilterRentals(rentals, tt.query)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

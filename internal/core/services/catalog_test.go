package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
	"github.com/ammerola/kasir-rental/internal/core/services"
	"github.com/ammerola/kasir-rental/test/helpers"
	"github.com/ammerola/kasir-rental/test/mocks"
)

// passthroughCache makes every GetOrSet behave like a cache miss
func passthroughCache(cache *mocks.MockCacheRepository) {
	cache.EXPECT().GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any, fetch func() (any, error), _ time.Duration) error {
			v, err := fetch()
			if err != nil {
				return err
			}
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			return json.Unmarshal(data, dest)
		}).AnyTimes()
}

func newCatalogService(t *testing.T) (*services.CatalogService, *mocks.MockRentalBackend, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockRentalBackend(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	return services.NewCatalogService(backend, cache, time.Minute, helpers.TestLogger()), backend, cache
}

func TestCatalogService_ListStores(t *testing.T) {
	svc, backend, cache := newCatalogService(t)
	passthroughCache(cache)
	backend.EXPECT().ListStores(gomock.Any(), 100).
		Return([]ports.BackendStore{{StoreID: 1}, {StoreID: 2}}, nil)

	stores, err := svc.ListStores(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Store{
		{ID: "1", Label: "Store #1"},
		{ID: "2", Label: "Store #2"},
	}, stores)
}

func TestCatalogService_ListStaff(t *testing.T) {
	staff := []ports.BackendStaff{
		{StaffID: 1, FirstName: "Mike", LastName: "Hillyer", StoreID: 1, Active: true},
		{StaffID: 2, FirstName: "Jon", LastName: "Stephens", StoreID: 2, Active: true},
		{StaffID: 3, FirstName: "Gone", LastName: "Away", StoreID: 1, Active: false},
	}

	tests := []struct {
		name    string
		storeID string
		want    []domain.Staff
		wantErr error
	}{
		{
			name:    "active_staff_only",
			storeID: "",
			want: []domain.Staff{
				{ID: "1", Label: "Mike Hillyer", StoreID: "1"},
				{ID: "2", Label: "Jon Stephens", StoreID: "2"},
			},
		},
		{
			name:    "filtered_by_store",
			storeID: "2",
			want:    []domain.Staff{{ID: "2", Label: "Jon Stephens", StoreID: "2"}},
		},
		{
			name:    "invalid_store_filter",
			storeID: "two",
			wantErr: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend, cache := newCatalogService(t)
			passthroughCache(cache)
			backend.EXPECT().ListStaff(gomock.Any(), 100).Return(staff, nil).AnyTimes()

			got, err := svc.ListStaff(context.Background(), tt.storeID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_LookupCustomers(t *testing.T) {
	t.Run("blank_query_lists_default_page", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		passthroughCache(cache)
		backend.EXPECT().ListCustomers(gomock.Any(), 20).Return([]ports.BackendCustomer{
			{CustomerID: 1, FirstName: "Mary", LastName: "Smith", Email: "mary@example.com"},
		}, nil)

		got, err := svc.LookupCustomers(context.Background(), "   ")

		require.NoError(t, err)
		assert.Equal(t, []domain.Customer{{ID: "1", Name: "Mary Smith", Phone: "mary@example.com"}}, got)
	})

	t.Run("query_uses_lookup", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		passthroughCache(cache)
		backend.EXPECT().LookupCustomers(gomock.Any(), "mar", 20).Return([]ports.BackendCustomerMatch{
			{CustomerID: 1, Name: "Mary Smith", Email: "mary@example.com"},
		}, nil)

		got, err := svc.LookupCustomers(context.Background(), " mar ")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mary Smith", got[0].Name)
	})

	t.Run("cache_hit_skips_backend", func(t *testing.T) {
		svc, _, cache := newCatalogService(t)
		cache.EXPECT().GetOrSet(gomock.Any(), "kasir-rental:customers:mar", gomock.Any(), gomock.Any(), 30*time.Second).
			DoAndReturn(func(_ context.Context, _ string, dest any, _ func() (any, error), _ time.Duration) error {
				*(dest.(*[]domain.Customer)) = []domain.Customer{{ID: "9", Name: "Cached"}}
				return nil
			})

		got, err := svc.LookupCustomers(context.Background(), "mar")

		require.NoError(t, err)
		assert.Equal(t, []domain.Customer{{ID: "9", Name: "Cached"}}, got)
	})

	t.Run("cache_outage_falls_back_to_backend", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		cache.EXPECT().GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("dial tcp: connection refused"))
		backend.EXPECT().LookupCustomers(gomock.Any(), "mar", 20).Return([]ports.BackendCustomerMatch{
			{CustomerID: 1, Name: "Mary Smith"},
		}, nil)

		got, err := svc.LookupCustomers(context.Background(), "mar")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("backend_error_is_surfaced", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		passthroughCache(cache)
		backend.EXPECT().LookupCustomers(gomock.Any(), "mar", 20).
			Return(nil, domain.NewRemoteError(500, "boom"))

		_, err := svc.LookupCustomers(context.Background(), "mar")

		assert.ErrorIs(t, err, domain.ErrRemoteFailure)
	})
}

func TestCatalogService_LookupFilms(t *testing.T) {
	t.Run("blank_query_lists_default_page", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		passthroughCache(cache)
		backend.EXPECT().ListFilms(gomock.Any(), 20).
			Return([]ports.BackendFilm{{FilmID: 1, Title: "ACADEMY DINOSAUR"}}, nil)

		got, err := svc.LookupFilms(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, []domain.Film{{ID: "1", Title: "ACADEMY DINOSAUR"}}, got)
	})

	t.Run("query_uses_lookup", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		passthroughCache(cache)
		backend.EXPECT().LookupFilms(gomock.Any(), "ace", 20).
			Return([]ports.BackendFilmMatch{{FilmID: 2, Title: "ACE GOLDFINGER"}}, nil)

		got, err := svc.LookupFilms(context.Background(), "ace")

		require.NoError(t, err)
		assert.Equal(t, []domain.Film{{ID: "2", Title: "ACE GOLDFINGER"}}, got)
	})
}

func TestCatalogService_FilmAvailability(t *testing.T) {
	t.Run("parses_ids_and_maps_counts", func(t *testing.T) {
		svc, backend, cache := newCatalogService(t)
		passthroughCache(cache)
		backend.EXPECT().GetFilmAvailability(gomock.Any(), int64(7), int64(1)).
			Return(&ports.BackendAvailability{FilmID: 7, Total: 4, Available: 3}, nil)

		got, err := svc.FilmAvailability(context.Background(), "7", "1")

		require.NoError(t, err)
		assert.Equal(t, &domain.FilmAvailability{Available: 3, Total: 4}, got)
	})

	t.Run("invalid_film_id", func(t *testing.T) {
		svc, _, _ := newCatalogService(t)

		_, err := svc.FilmAvailability(context.Background(), "x", "1")

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("works_without_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockRentalBackend(ctrl)
		svc := services.NewCatalogService(backend, nil, 0, helpers.TestLogger())
		backend.EXPECT().GetFilmAvailability(gomock.Any(), int64(7), int64(1)).
			Return(&ports.BackendAvailability{Total: 2, Available: 0}, nil)

		got, err := svc.FilmAvailability(context.Background(), "7", "1")

		require.NoError(t, err)
		assert.Equal(t, 0, got.Available)
		assert.Equal(t, 2, got.Total)
	})
}

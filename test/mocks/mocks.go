// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// Regenerate with `go generate ./test/mocks`.
package mocks

//go:generate mockgen -source=../../internal/core/ports/backend.go -destination=backend_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/checkout_journal.go -destination=checkout_journal_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/shift_store.go -destination=shift_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/report_storage.go -destination=report_storage_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/services.go -destination=services_mock.go -package=mocks

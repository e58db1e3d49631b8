// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's ports.
// To regenerate mocks, run `go generate ./...` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/inventory_store.go -destination=inventory_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/localizer.go -destination=localizer_mock.go -package=mocks

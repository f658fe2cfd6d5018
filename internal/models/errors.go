package models

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Callers compare with errors.Is; repositories wrap them with context.
var (
	// ErrProductNotFound is returned when an id does not match any product.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUConflict is returned when a write would duplicate an existing SKU.
	ErrSKUConflict = errors.New("sku already exists")

	// ErrEmptyExport is returned when an export is requested on an empty collection.
	ErrEmptyExport = errors.New("no products to export")
)

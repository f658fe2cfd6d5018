package repositories

import (
	"gudang/internal/models"
)

// ListOptions carries the paging window and optional search term for the
// listing queries. Search is expected to be trimmed by the caller; an empty
// string disables text matching.
type ListOptions struct {
	Offset int
	Limit  int
	Search string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns one page of products plus the total match count.
	// Without a search term the order is newest first; with one, results
	// are ranked by relevance (SKU hits outrank name hits).
	List(opts ListOptions) ([]models.Product, int64, error)
	// ListLowStock behaves like List but only returns products whose
	// quantity is below their alert threshold. Without a search term the
	// order is ascending quantity, most urgent shortage first.
	ListLowStock(opts ListOptions) ([]models.Product, int64, error)
	// GetAll returns every product, newest first.
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// Stats aggregates the whole collection in a single pass.
	Stats() (*models.ProductStats, error)
}

package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gudang/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the semantics of the GORM implementation, including SKU
// uniqueness and the relevance ranking, and is used by unit tests and for
// running the server without a database.
type MemoryProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

func (r *MemoryProductRepository) snapshot() []models.Product {
	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	return list
}

// newestFirst orders by creation time descending, breaking ties on ID so
// pages are stable.
func newestFirst(list []models.Product) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
}

func pageSlice(list []models.Product, offset, limit int) []models.Product {
	if offset >= len(list) {
		return []models.Product{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

func (r *MemoryProductRepository) list(list []models.Product, opts ListOptions) ([]models.Product, int64, error) {
	tokens := searchTokens(opts.Search)
	if len(tokens) > 0 {
		matched := make([]models.Product, 0, len(list))
		for _, p := range list {
			if matchScore(&p, tokens) > 0 {
				matched = append(matched, p)
			}
		}
		newestFirst(matched)
		sort.SliceStable(matched, func(i, j int) bool {
			return matchScore(&matched[i], tokens) > matchScore(&matched[j], tokens)
		})
		list = matched
	}
	return pageSlice(list, opts.Offset, opts.Limit), int64(len(list)), nil
}

// List returns one page of products, newest first, or ranked by relevance
// when a search term is present.
func (r *MemoryProductRepository) List(opts ListOptions) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.snapshot()
	newestFirst(list)
	return r.list(list, opts)
}

// ListLowStock returns one page of products below their alert threshold,
// most urgent shortage first unless a search term reorders by relevance.
func (r *MemoryProductRepository) ListLowStock(opts ListOptions) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	low := make([]models.Product, 0)
	for _, p := range r.snapshot() {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		if low[i].Quantity != low[j].Quantity {
			return low[i].Quantity < low[j].Quantity
		}
		return low[i].ID < low[j].ID
	})
	return r.list(low, opts)
}

// GetAll returns every product, newest first.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.snapshot()
	newestFirst(list)
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
	}
	return &product, nil
}

func (r *MemoryProductRepository) skuTaken(sku, excludeID string) bool {
	for _, p := range r.products {
		if p.ID != excludeID && strings.EqualFold(p.SKU, sku) {
			return true
		}
	}
	return false
}

// Create adds a new product, assigning an ID and timestamps when absent.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(product.SKU, "") {
		return fmt.Errorf("sku %s: %w", product.SKU, models.ErrSKUConflict)
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, models.ErrProductNotFound)
	}
	if r.skuTaken(product.SKU, product.ID) {
		return fmt.Errorf("sku %s: %w", product.SKU, models.ErrSKUConflict)
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// Stats aggregates the whole collection.
func (r *MemoryProductRepository) Stats() (*models.ProductStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &models.ProductStats{}
	for _, p := range r.products {
		stats.TotalProducts++
		stats.TotalValue += float64(p.Quantity) * p.Price
		if p.IsLowStock() {
			stats.LowStockCount++
		} else {
			stats.InStockCount++
		}
	}
	return stats, nil
}

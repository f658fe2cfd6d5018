package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gudang/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// It expects the database to be opened with TranslateError enabled so that
// unique-index violations surface as gorm.ErrDuplicatedKey.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// searchFilterSQL builds the WHERE fragment matching any token against the
// SKU or name, case-insensitively.
func searchFilterSQL(tokens []string) (string, []interface{}) {
	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2)
	for _, tok := range tokens {
		pattern := "%" + tok + "%"
		clauses = append(clauses, "(UPPER(sku) LIKE ? OR UPPER(name) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	return strings.Join(clauses, " OR "), args
}

// searchScoreSQL builds a SELECT list that adds a computed relevance column,
// summing the per-token weights for SKU and name hits.
func searchScoreSQL(tokens []string) (string, []interface{}) {
	terms := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2)
	for _, tok := range tokens {
		pattern := "%" + tok + "%"
		terms = append(terms, fmt.Sprintf(
			"(CASE WHEN UPPER(sku) LIKE ? THEN %d ELSE 0 END + CASE WHEN UPPER(name) LIKE ? THEN %d ELSE 0 END)",
			skuMatchWeight, nameMatchWeight))
		args = append(args, pattern, pattern)
	}
	return "*, " + strings.Join(terms, " + ") + " AS relevance", args
}

// List retrieves one page of products, newest first, or ranked by relevance
// when a search term is present.
func (r *GORMProductRepository) List(opts ListOptions) ([]models.Product, int64, error) {
	return r.listWhere(nil, "created_at DESC, id DESC", opts)
}

// ListLowStock retrieves one page of products whose quantity is below their
// alert threshold. The predicate is computed per query so that edits to
// either field immediately affect membership.
func (r *GORMProductRepository) ListLowStock(opts ListOptions) ([]models.Product, int64, error) {
	return r.listWhere([]string{"quantity < stock_alert_threshold"}, "quantity ASC, id ASC", opts)
}

func (r *GORMProductRepository) listWhere(filters []string, defaultOrder string, opts ListOptions) ([]models.Product, int64, error) {
	tokens := searchTokens(opts.Search)

	query := func() *gorm.DB {
		q := r.db.Model(&models.Product{})
		for _, f := range filters {
			q = q.Where(f)
		}
		if len(tokens) > 0 {
			where, args := searchFilterSQL(tokens)
			q = q.Where(where, args...)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	q := query()
	order := defaultOrder
	if len(tokens) > 0 {
		sel, args := searchScoreSQL(tokens)
		q = q.Select(sel, args...)
		order = "relevance DESC, created_at DESC, id DESC"
	}

	var products []models.Product
	if err := q.Order(order).Offset(opts.Offset).Limit(opts.Limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetAll retrieves every product, newest first.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning an ID when absent. A duplicate SKU
// is reported as models.ErrSKUConflict; the unique index makes the check
// atomic under concurrent creates.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("sku %s: %w", product.SKU, models.ErrSKUConflict)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the full state of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("sku %s: %w", product.SKU, models.ErrSKUConflict)
		}
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row, so we
		// check RowsAffected instead.
		return fmt.Errorf("product %s: %w", product.ID, models.ErrProductNotFound)
	}
	return nil
}

// Delete removes a product by its ID. Deletion is permanent.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
	}
	return nil
}

// Stats aggregates the whole collection in a single pass. Missing numeric
// fields count as zero rather than poisoning the sums.
func (r *GORMProductRepository) Stats() (*models.ProductStats, error) {
	var stats models.ProductStats
	err := r.db.Model(&models.Product{}).Select(
		"COUNT(*) AS total_products, " +
			"COALESCE(SUM(COALESCE(quantity, 0) * COALESCE(price, 0)), 0) AS total_value, " +
			"COALESCE(SUM(CASE WHEN COALESCE(quantity, 0) < COALESCE(stock_alert_threshold, 0) THEN 1 ELSE 0 END), 0) AS low_stock_count, " +
			"COALESCE(SUM(CASE WHEN COALESCE(quantity, 0) >= COALESCE(stock_alert_threshold, 0) THEN 1 ELSE 0 END), 0) AS in_stock_count").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute product stats: %w", err)
	}
	return &stats, nil
}

package services

import (
	"log"
	"strings"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/rabbitmq"
)

// Paging defaults and bounds for the listing endpoints. The limit cap keeps
// a single request from dragging the whole collection across the wire.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// CreateProductInput is the request body for creating a product.
// StockAlertThreshold is a pointer so an omitted field can default to 10
// while an explicit zero is kept.
type CreateProductInput struct {
	Name                string  `json:"name" validate:"required,min=1,max=100"`
	SKU                 string  `json:"sku" validate:"required,min=1,max=100"`
	Quantity            int     `json:"quantity" validate:"gte=0"`
	Price               float64 `json:"price" validate:"gte=0"`
	StockAlertThreshold *int    `json:"stockAlertThreshold" validate:"omitempty,gte=0"`
}

// UpdateProductInput is the request body for a partial update. Nil fields
// are left unchanged on the stored product.
type UpdateProductInput struct {
	Name                *string  `json:"name" validate:"omitempty,min=1,max=100"`
	SKU                 *string  `json:"sku" validate:"omitempty,min=1,max=100"`
	Quantity            *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price               *float64 `json:"price" validate:"omitempty,gte=0"`
	StockAlertThreshold *int     `json:"stockAlertThreshold" validate:"omitempty,gte=0"`
}

// ProductService handles business logic related to products: the paginated
// listing queries, CRUD with SKU normalization, and low-stock alerting.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional; nil disables alert publishing
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// normalizePaging applies the defaults and bounds of the listing contract:
// page defaults to 1 and never goes below it, limit defaults to 10 and is
// capped at 50.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func (s *ProductService) listPage(page, limit int, search string,
	fetch func(repositories.ListOptions) ([]models.Product, int64, error)) (*models.ProductPage, error) {

	page, limit = normalizePaging(page, limit)
	opts := repositories.ListOptions{
		Offset: (page - 1) * limit,
		Limit:  limit,
		Search: strings.TrimSpace(search),
	}

	items, total, err := fetch(opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}
	return &models.ProductPage{
		Data:       items,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListProducts returns one page of the product collection. A non-blank
// search term switches from newest-first ordering to relevance ranking over
// name and SKU. A page past the end returns an empty slice with the full
// pagination metadata; the requested page is never clamped downward.
func (s *ProductService) ListProducts(page, limit int, search string) (*models.ProductPage, error) {
	return s.listPage(page, limit, search, s.repo.List)
}

// ListLowStock returns one page of the products below their alert
// threshold, most urgent shortage first, or ranked by relevance when a
// search term is given.
func (s *ProductService) ListLowStock(page, limit int, search string) (*models.ProductPage, error) {
	return s.listPage(page, limit, search, s.repo.ListLowStock)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. The SKU is upper-cased before
// persistence and the alert threshold defaults to 10 when omitted.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:                strings.TrimSpace(input.Name),
		SKU:                 strings.ToUpper(strings.TrimSpace(input.SKU)),
		Quantity:            input.Quantity,
		Price:               input.Price,
		StockAlertThreshold: 10,
	}
	if input.StockAlertThreshold != nil {
		product.StockAlertThreshold = *input.StockAlertThreshold
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publishAlertIfLow(product)
	return product, nil
}

// UpdateProduct applies a partial update: only the supplied fields change,
// and a supplied SKU is re-normalized to upper case.
func (s *ProductService) UpdateProduct(id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.SKU != nil {
		product.SKU = strings.ToUpper(strings.TrimSpace(*input.SKU))
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.StockAlertThreshold != nil {
		product.StockAlertThreshold = *input.StockAlertThreshold
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publishAlertIfLow(product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// publishAlertIfLow emits a stock alert event when a write leaves the
// product below its threshold. Publishing is best effort: a broker failure
// must not fail the write that triggered it.
func (s *ProductService) publishAlertIfLow(product *models.Product) {
	if s.mqClient == nil || !product.IsLowStock() {
		return
	}

	alert := rabbitmq.StockAlert{
		ProductID: product.ID,
		SKU:       product.SKU,
		Quantity:  product.Quantity,
		Threshold: product.StockAlertThreshold,
	}
	if err := s.mqClient.PublishStockAlert(alert); err != nil {
		log.Printf("Warning: Failed to publish stock alert for product %s: %v", product.ID, err)
	}
}

package repositories_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

func seedRepo(t *testing.T, repo *repositories.MemoryProductRepository, products []models.Product) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := range products {
		// Spread creation times so the newest-first ordering is deterministic.
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(&products[i]); err != nil {
			t.Fatalf("seeding %s: %v", products[i].SKU, err)
		}
	}
}

func TestMemoryRepository_List_NewestFirst(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedRepo(t, repo, []models.Product{
		{Name: "Oldest", SKU: "A-1"},
		{Name: "Middle", SKU: "B-1"},
		{Name: "Newest", SKU: "C-1"},
	})

	items, total, err := repo.List(repositories.ListOptions{Offset: 0, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "Newest", items[0].Name)
	assert.Equal(t, "Oldest", items[2].Name)
}

func TestMemoryRepository_List_Paging(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedRepo(t, repo, []models.Product{
		{Name: "P1", SKU: "S-1"},
		{Name: "P2", SKU: "S-2"},
		{Name: "P3", SKU: "S-3"},
	})

	items, total, err := repo.List(repositories.ListOptions{Offset: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 1)

	// Offset past the end returns an empty page, total untouched.
	items, total, err = repo.List(repositories.ListOptions{Offset: 10, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 0)
}

func TestMemoryRepository_List_SearchRanking(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedRepo(t, repo, []models.Product{
		{Name: "Wireless Mouse", SKU: "ACC-01"},  // name hit only: weight 5
		{Name: "Gaming Pad", SKU: "MOUSE-99"},    // sku hit only: weight 10
		{Name: "Mouse Mat Mouse", SKU: "MOU-77"}, // name and sku hit: weight 15
		{Name: "Keyboard", SKU: "KEY-01"},        // no hit
	})

	items, total, err := repo.List(repositories.ListOptions{Offset: 0, Limit: 10, Search: "mou"})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "MOU-77", items[0].SKU)
	assert.Equal(t, "MOUSE-99", items[1].SKU)
	assert.Equal(t, "ACC-01", items[2].SKU)
}

func TestMemoryRepository_List_SearchCaseInsensitive(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedRepo(t, repo, []models.Product{
		{Name: "Wireless Mouse", SKU: "ACC-01"},
	})

	_, total, err := repo.List(repositories.ListOptions{Offset: 0, Limit: 10, Search: "WIRELESS"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestMemoryRepository_ListLowStock(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedRepo(t, repo, []models.Product{
		{Name: "Plenty", SKU: "A-1", Quantity: 50, StockAlertThreshold: 10},
		{Name: "AtThreshold", SKU: "B-1", Quantity: 10, StockAlertThreshold: 10},
		{Name: "Short", SKU: "C-1", Quantity: 4, StockAlertThreshold: 10},
		{Name: "Critical", SKU: "D-1", Quantity: 1, StockAlertThreshold: 10},
	})

	items, total, err := repo.ListLowStock(repositories.ListOptions{Offset: 0, Limit: 10})

	assert.NoError(t, err)
	// Quantity equal to the threshold is not low stock.
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "Critical", items[0].Name)
	assert.Equal(t, "Short", items[1].Name)
}

func TestMemoryRepository_ListLowStock_WithSearch(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedRepo(t, repo, []models.Product{
		{Name: "Mouse", SKU: "MOU-1", Quantity: 2, StockAlertThreshold: 10},
		{Name: "Mouse Pad", SKU: "PAD-1", Quantity: 50, StockAlertThreshold: 10},
		{Name: "Cable", SKU: "CAB-1", Quantity: 1, StockAlertThreshold: 10},
	})

	// Both predicates must hold: low stock and text match.
	items, total, err := repo.ListLowStock(repositories.ListOptions{Offset: 0, Limit: 10, Search: "mouse"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "MOU-1", items[0].SKU)
}

func TestMemoryRepository_Create_SKUConflict(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := models.Product{Name: "First", SKU: "DUP-1"}
	assert.NoError(t, repo.Create(&first))

	// Case-insensitive duplicate detection.
	second := models.Product{Name: "Second", SKU: "dup-1"}
	err := repo.Create(&second)
	assert.True(t, errors.Is(err, models.ErrSKUConflict))
}

func TestMemoryRepository_Update_SKUConflict(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	a := models.Product{Name: "A", SKU: "A-1"}
	b := models.Product{Name: "B", SKU: "B-1"}
	assert.NoError(t, repo.Create(&a))
	assert.NoError(t, repo.Create(&b))

	b.SKU = "A-1"
	err := repo.Update(&b)
	assert.True(t, errors.Is(err, models.ErrSKUConflict))

	// Updating a product keeping its own SKU is fine.
	a.Quantity = 7
	assert.NoError(t, repo.Update(&a))
}

func TestMemoryRepository_GetDelete_NotFound(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	_, err := repo.GetByID("missing")
	assert.True(t, errors.Is(err, models.ErrProductNotFound))

	err = repo.Delete("missing")
	assert.True(t, errors.Is(err, models.ErrProductNotFound))
}

func TestMemoryRepository_Stats(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	stats, err := repo.Stats()
	assert.NoError(t, err)
	assert.Equal(t, &models.ProductStats{}, stats)

	seedRepo(t, repo, []models.Product{
		{Name: "A", SKU: "A-1", Quantity: 10, Price: 2.5, StockAlertThreshold: 5},
		{Name: "B", SKU: "B-1", Quantity: 2, Price: 10, StockAlertThreshold: 5},
		{Name: "C", SKU: "C-1", Quantity: 5, Price: 1, StockAlertThreshold: 5},
	})

	stats, err = repo.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.InDelta(t, 10*2.5+2*10+5*1, stats.TotalValue, 1e-9)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(2), stats.InStockCount)
}

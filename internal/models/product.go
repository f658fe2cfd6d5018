package models

import "time"

// Product represents a single inventory item.
// The JSON field names mirror the shape the web client consumes.
type Product struct {
	ID                  string    `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name                string    `json:"name" gorm:"not null" validate:"required,min=1,max=100"`
	SKU                 string    `json:"sku" gorm:"column:sku;uniqueIndex;not null" validate:"required,min=1,max=100"`
	Quantity            int       `json:"quantity" validate:"gte=0"`
	Price               float64   `json:"price" validate:"gte=0"`
	StockAlertThreshold int       `json:"stockAlertThreshold" validate:"gte=0"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the product has fallen below its alert
// threshold. A quantity equal to the threshold still counts as in stock.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.StockAlertThreshold
}

// ProductStats holds the aggregate numbers shown on the dashboard.
type ProductStats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int64   `json:"lowStockCount"`
	InStockCount  int64   `json:"inStockCount"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryItem es un producto vendible del catálogo. Pertenece a una
// Category del mismo tenant (CategoryID, FK explícita) y se asocia a sus
// ingredientes vía la tabla category_item_components, que es una relación
// propia y no un campo del entity.
type CategoryItem struct {
	ID           string
	TenantID     string
	CategoryID   string
	Name         string // único por tenant
	Description  string
	BasePrice    decimal.Decimal // no negativo
	ImageURL     string
	SKU          string // único por tenant
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

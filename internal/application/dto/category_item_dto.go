package dto

import "github.com/shopspring/decimal"

// CategoryItemRequest entrada para crear o actualizar un item.
// ComponentIDs reescribe el set completo de ingredientes del item.
type CategoryItemRequest struct {
	CategoryID   string          `json:"categoryId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	ImageURL     string          `json:"imageUrl"`
	SKU          string          `json:"sku"`
	DisplayOrder int             `json:"displayOrder"`
	Active       *bool           `json:"active"`
	ComponentIDs []string        `json:"componentIds"`
}

// CategoryItemResponse salida de un item con el resumen de sus componentes.
type CategoryItemResponse struct {
	ID           string             `json:"id"`
	CategoryID   string             `json:"categoryId"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	BasePrice    decimal.Decimal    `json:"basePrice"`
	ImageURL     string             `json:"imageUrl"`
	SKU          string             `json:"sku"`
	DisplayOrder int                `json:"displayOrder"`
	Active       bool               `json:"active"`
	Components   []ComponentSummary `json:"components,omitempty"`
}

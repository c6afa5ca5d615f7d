package dto

import "github.com/shopspring/decimal"

// CustomizationRequest entrada para crear o actualizar una customization.
type CustomizationRequest struct {
	CategoryItemID  string          `json:"categoryItemId"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"` // con signo
	Active          *bool           `json:"active"`
	ComponentIDs    []string        `json:"componentIds"`
}

// CustomizationResponse salida de una customization.
type CustomizationResponse struct {
	ID              string             `json:"id"`
	CategoryItemID  string             `json:"categoryItemId"`
	Name            string             `json:"name"`
	PriceAdjustment decimal.Decimal    `json:"priceAdjustment"`
	Active          bool               `json:"active"`
	Components      []ComponentSummary `json:"components,omitempty"`
}

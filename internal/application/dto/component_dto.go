package dto

import "github.com/shopspring/decimal"

// ComponentRequest entrada para crear o actualizar un componente.
type ComponentRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Cost         decimal.Decimal `json:"cost"`
	IsAllergenic bool            `json:"isAllergenic"`
	AllergenInfo string          `json:"allergenInfo"`
}

// ComponentResponse salida de un componente.
type ComponentResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Cost         decimal.Decimal `json:"cost"`
	IsAllergenic bool            `json:"isAllergenic"`
	AllergenInfo string          `json:"allergenInfo,omitempty"`
}

// ComponentSummary resumen plano de un componente dentro de items y customizations.
type ComponentSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsAllergenic bool   `json:"isAllergenic"`
}

package dto

import "github.com/shopspring/decimal"

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	Active       *bool  `json:"active"` // nil = true al crear, sin cambio al actualizar
}

// CategoryResponse salida de una categoría con el resumen de sus items.
type CategoryResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	DisplayOrder int                   `json:"displayOrder"`
	Active       bool                  `json:"active"`
	Items        []CategoryItemSummary `json:"items,omitempty"`
}

// CategoryItemSummary resumen plano de un item para respuestas de lectura
// (sin asociaciones anidadas).
type CategoryItemSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	ImageURL    string          `json:"imageUrl"`
}

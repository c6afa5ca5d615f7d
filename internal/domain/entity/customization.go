package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryItemCustomization es una variante de un item (ej. "extra queso").
// Pertenece a un CategoryItem del mismo tenant y ajusta su precio; sus
// componentes viven en la tabla customization_components.
type CategoryItemCustomization struct {
	ID              string
	TenantID        string
	CategoryItemID  string
	Name            string
	PriceAdjustment decimal.Decimal // con signo: puede descontar
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

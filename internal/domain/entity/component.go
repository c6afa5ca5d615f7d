package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component es un ingrediente reutilizable del catálogo. Items y
// customizations lo referencian vía tablas de asociación propias; el
// componente no es dueño de esas relaciones.
type Component struct {
	ID           string
	TenantID     string
	Name         string // único por tenant
	Description  string
	Cost         decimal.Decimal
	IsAllergenic bool
	AllergenInfo string // opcional, solo si IsAllergenic
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

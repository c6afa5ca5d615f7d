package entity

import "time"

// Category agrupa items del catálogo de un tenant. (name, tenant_id) es único.
// No es dueña del ciclo de vida de sus items: la relación vive en CategoryItem.
type Category struct {
	ID           string
	TenantID     string // inmutable después de la creación
	Name         string
	Description  string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

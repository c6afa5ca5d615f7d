package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CustomizationRepository define el puerto de persistencia para
// CategoryItemCustomization. Igual que los items, la asociación con
// componentes vive en su propia tabla (customization_components).
type CustomizationRepository interface {
	ListByTenant(tenantID string) ([]*entity.CategoryItemCustomization, error)
	ListByItemAndTenant(itemID, tenantID string) ([]*entity.CategoryItemCustomization, error)
	GetByIDAndTenant(id, tenantID string) (*entity.CategoryItemCustomization, error)
	Save(customization *entity.CategoryItemCustomization) error
	SaveAll(customizations []*entity.CategoryItemCustomization) error
	ReplaceComponents(customizationID string, componentIDs []string) error
	ListComponents(customizationID string) ([]*entity.Component, error)
	Delete(id, tenantID string) error
	DeleteAll() error
	DeleteAllByTenant(tenantID string) error
}

package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryItemRepository define el puerto de persistencia para CategoryItem.
// La asociación item↔component es una relación propia (tabla
// category_item_components); ReplaceComponents la reescribe completa para
// un item y ListComponents la resuelve bajo demanda.
type CategoryItemRepository interface {
	ListByTenant(tenantID string) ([]*entity.CategoryItem, error) // orden: display_order asc
	ListByCategoryAndTenant(categoryID, tenantID string) ([]*entity.CategoryItem, error)
	GetByIDAndTenant(id, tenantID string) (*entity.CategoryItem, error)
	ExistsByNameAndTenant(name, tenantID string) (bool, error)
	ExistsBySKUAndTenant(sku, tenantID string) (bool, error)
	Save(item *entity.CategoryItem) error
	SaveAll(items []*entity.CategoryItem) error
	ReplaceComponents(itemID string, componentIDs []string) error
	ListComponents(itemID string) ([]*entity.Component, error)
	Delete(id, tenantID string) error
	DeleteAll() error
	DeleteAllByTenant(tenantID string) error
}

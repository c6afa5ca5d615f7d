package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Toda lectura filtra estrictamente por tenant; GetByIDAndTenant devuelve
// (nil, nil) si el id no existe bajo ese tenant.
type CategoryRepository interface {
	ListByTenant(tenantID string) ([]*entity.Category, error) // orden: display_order asc
	GetByIDAndTenant(id, tenantID string) (*entity.Category, error)
	ExistsByNameAndTenant(name, tenantID string) (bool, error)
	Save(category *entity.Category) error
	SaveAll(categories []*entity.Category) error
	Delete(id, tenantID string) error
	DeleteAll() error
	DeleteAllByTenant(tenantID string) error
}

package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ComponentRepository define el puerto de persistencia para Component (DIP).
type ComponentRepository interface {
	ListByTenant(tenantID string) ([]*entity.Component, error) // orden: name asc (estable)
	GetByIDAndTenant(id, tenantID string) (*entity.Component, error)
	ExistsByNameAndTenant(name, tenantID string) (bool, error)
	Save(component *entity.Component) error
	SaveAll(components []*entity.Component) error
	Delete(id, tenantID string) error
	DeleteAll() error
	DeleteAllByTenant(tenantID string) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación del puerto ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

const componentColumns = `id, tenant_id, name, description, cost, is_allergenic, allergen_info, created_at, updated_at`

func scanComponent(row pgx.Row) (*entity.Component, error) {
	var c entity.Component
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Description, &c.Cost,
		&c.IsAllergenic, &c.AllergenInfo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByTenant lista los componentes de un tenant (orden estable por nombre).
func (r *ComponentRepo) ListByTenant(tenantID string) ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE tenant_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()
	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByIDAndTenant obtiene un componente por ID dentro del tenant. (nil, nil) si no existe.
func (r *ComponentRepo) GetByIDAndTenant(id, tenantID string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1 AND tenant_id = $2`
	c, err := scanComponent(r.q.QueryRow(context.Background(), query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component: %w", err)
	}
	return c, nil
}

// ExistsByNameAndTenant verifica si ya existe un componente con ese nombre en el tenant.
func (r *ComponentRepo) ExistsByNameAndTenant(name, tenantID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM components WHERE name = $1 AND tenant_id = $2)`,
		name, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists component: %w", err)
	}
	return exists, nil
}

// Save inserta o actualiza un componente (upsert por id).
func (r *ComponentRepo) Save(component *entity.Component) error {
	query := `
		INSERT INTO components (id, tenant_id, name, description, cost, is_allergenic, allergen_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description, cost = EXCLUDED.cost,
			is_allergenic = EXCLUDED.is_allergenic, allergen_info = EXCLUDED.allergen_info,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.TenantID, component.Name, component.Description,
		component.Cost, component.IsAllergenic, component.AllergenInfo,
		component.CreatedAt, component.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save component: %w", err)
	}
	return nil
}

// SaveAll persiste en bloque (usado por el loader).
func (r *ComponentRepo) SaveAll(components []*entity.Component) error {
	for _, c := range components {
		if err := r.Save(c); err != nil {
			return fmt.Errorf("save all components (%s): %w", c.Name, err)
		}
	}
	return nil
}

// Delete elimina un componente del tenant.
func (r *ComponentRepo) Delete(id, tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM components WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla completa (fase de reset del loader).
func (r *ComponentRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM components`)
	if err != nil {
		return fmt.Errorf("delete all components: %w", err)
	}
	return nil
}

// DeleteAllByTenant elimina todos los componentes de un tenant.
func (r *ComponentRepo) DeleteAllByTenant(tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM components WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return fmt.Errorf("delete components by tenant: %w", err)
	}
	return nil
}

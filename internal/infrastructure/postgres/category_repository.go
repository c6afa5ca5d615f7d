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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, tenant_id, name, description, display_order, active, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Description, &c.DisplayOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByTenant lista las categorías de un tenant ordenadas por display_order.
func (r *CategoryRepo) ListByTenant(tenantID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE tenant_id = $1 ORDER BY display_order ASC, name ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByIDAndTenant obtiene una categoría por ID dentro del tenant. (nil, nil) si no existe.
func (r *CategoryRepo) GetByIDAndTenant(id, tenantID string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND tenant_id = $2`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ExistsByNameAndTenant verifica si ya existe una categoría con ese nombre en el tenant.
func (r *CategoryRepo) ExistsByNameAndTenant(name, tenantID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND tenant_id = $2)`,
		name, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return exists, nil
}

// Save inserta o actualiza una categoría (upsert por id). TenantID nunca se actualiza.
func (r *CategoryRepo) Save(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, tenant_id, name, description, display_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			display_order = EXCLUDED.display_order, active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.TenantID, category.Name, category.Description,
		category.DisplayOrder, category.Active, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// SaveAll persiste en bloque (usado por el loader).
func (r *CategoryRepo) SaveAll(categories []*entity.Category) error {
	for _, c := range categories {
		if err := r.Save(c); err != nil {
			return fmt.Errorf("save all categories (%s): %w", c.Name, err)
		}
	}
	return nil
}

// Delete elimina una categoría del tenant.
func (r *CategoryRepo) Delete(id, tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla completa (fase de reset del loader).
func (r *CategoryRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories`)
	if err != nil {
		return fmt.Errorf("delete all categories: %w", err)
	}
	return nil
}

// DeleteAllByTenant elimina todas las categorías de un tenant.
func (r *CategoryRepo) DeleteAllByTenant(tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return fmt.Errorf("delete categories by tenant: %w", err)
	}
	return nil
}

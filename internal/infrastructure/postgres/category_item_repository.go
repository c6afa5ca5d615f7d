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

var _ repository.CategoryItemRepository = (*CategoryItemRepo)(nil)

// CategoryItemRepo implementación del puerto CategoryItemRepository sobre PostgreSQL.
// La asociación con componentes vive en category_item_components y se
// reescribe completa con ReplaceComponents.
type CategoryItemRepo struct {
	q Querier
}

// NewCategoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryItemRepository(q Querier) *CategoryItemRepo {
	return &CategoryItemRepo{q: q}
}

const categoryItemColumns = `id, tenant_id, category_id, name, description, base_price, image_url, sku, display_order, active, created_at, updated_at`

func scanCategoryItem(row pgx.Row) (*entity.CategoryItem, error) {
	var it entity.CategoryItem
	err := row.Scan(&it.ID, &it.TenantID, &it.CategoryID, &it.Name, &it.Description,
		&it.BasePrice, &it.ImageURL, &it.SKU, &it.DisplayOrder, &it.Active,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CategoryItemRepo) queryItems(query string, args ...any) ([]*entity.CategoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list category items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryItem
	for rows.Next() {
		it, err := scanCategoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListByTenant lista los items de un tenant ordenados por display_order.
func (r *CategoryItemRepo) ListByTenant(tenantID string) ([]*entity.CategoryItem, error) {
	return r.queryItems(
		`SELECT `+categoryItemColumns+` FROM category_items WHERE tenant_id = $1 ORDER BY display_order ASC, name ASC`,
		tenantID)
}

// ListByCategoryAndTenant lista los items de una categoría dentro del tenant.
func (r *CategoryItemRepo) ListByCategoryAndTenant(categoryID, tenantID string) ([]*entity.CategoryItem, error) {
	return r.queryItems(
		`SELECT `+categoryItemColumns+` FROM category_items WHERE category_id = $1 AND tenant_id = $2 ORDER BY display_order ASC, name ASC`,
		categoryID, tenantID)
}

// GetByIDAndTenant obtiene un item por ID dentro del tenant. (nil, nil) si no existe.
func (r *CategoryItemRepo) GetByIDAndTenant(id, tenantID string) (*entity.CategoryItem, error) {
	query := `SELECT ` + categoryItemColumns + ` FROM category_items WHERE id = $1 AND tenant_id = $2`
	it, err := scanCategoryItem(r.q.QueryRow(context.Background(), query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category item: %w", err)
	}
	return it, nil
}

// ExistsByNameAndTenant verifica si ya existe un item con ese nombre en el tenant.
func (r *CategoryItemRepo) ExistsByNameAndTenant(name, tenantID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM category_items WHERE name = $1 AND tenant_id = $2)`,
		name, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category item: %w", err)
	}
	return exists, nil
}

// ExistsBySKUAndTenant verifica si ya existe un item con ese SKU en el tenant.
func (r *CategoryItemRepo) ExistsBySKUAndTenant(sku, tenantID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM category_items WHERE sku = $1 AND tenant_id = $2)`,
		sku, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category item by sku: %w", err)
	}
	return exists, nil
}

// Save inserta o actualiza un item (upsert por id). TenantID nunca se actualiza.
func (r *CategoryItemRepo) Save(item *entity.CategoryItem) error {
	query := `
		INSERT INTO category_items (id, tenant_id, category_id, name, description, base_price, image_url, sku, display_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			category_id = EXCLUDED.category_id, name = EXCLUDED.name,
			description = EXCLUDED.description, base_price = EXCLUDED.base_price,
			image_url = EXCLUDED.image_url, sku = EXCLUDED.sku,
			display_order = EXCLUDED.display_order, active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.CategoryID, item.Name, item.Description,
		item.BasePrice, item.ImageURL, item.SKU, item.DisplayOrder, item.Active,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save category item: %w", err)
	}
	return nil
}

// SaveAll persiste en bloque (usado por el loader).
func (r *CategoryItemRepo) SaveAll(items []*entity.CategoryItem) error {
	for _, it := range items {
		if err := r.Save(it); err != nil {
			return fmt.Errorf("save all category items (%s): %w", it.Name, err)
		}
	}
	return nil
}

// ReplaceComponents reescribe el set de componentes de un item.
func (r *CategoryItemRepo) ReplaceComponents(itemID string, componentIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM category_item_components WHERE category_item_id = $1`, itemID); err != nil {
		return fmt.Errorf("clear item components: %w", err)
	}
	for _, componentID := range componentIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO category_item_components (category_item_id, component_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			itemID, componentID); err != nil {
			return fmt.Errorf("link item component: %w", err)
		}
	}
	return nil
}

// ListComponents resuelve los componentes asociados a un item.
func (r *CategoryItemRepo) ListComponents(itemID string) ([]*entity.Component, error) {
	query := `
		SELECT c.id, c.tenant_id, c.name, c.description, c.cost, c.is_allergenic, c.allergen_info, c.created_at, c.updated_at
		FROM components c
		JOIN category_item_components ic ON ic.component_id = c.id
		WHERE ic.category_item_id = $1
		ORDER BY c.name ASC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item components: %w", err)
	}
	defer rows.Close()
	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un item del tenant (las filas de asociación caen por FK ON DELETE CASCADE).
func (r *CategoryItemRepo) Delete(id, tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM category_items WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete category item: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla completa (fase de reset del loader).
func (r *CategoryItemRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM category_items`)
	if err != nil {
		return fmt.Errorf("delete all category items: %w", err)
	}
	return nil
}

// DeleteAllByTenant elimina todos los items de un tenant.
func (r *CategoryItemRepo) DeleteAllByTenant(tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM category_items WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return fmt.Errorf("delete category items by tenant: %w", err)
	}
	return nil
}

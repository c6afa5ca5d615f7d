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

var _ repository.CustomizationRepository = (*CustomizationRepo)(nil)

// CustomizationRepo implementación del puerto CustomizationRepository sobre PostgreSQL.
type CustomizationRepo struct {
	q Querier
}

// NewCustomizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomizationRepository(q Querier) *CustomizationRepo {
	return &CustomizationRepo{q: q}
}

const customizationColumns = `id, tenant_id, category_item_id, name, price_adjustment, active, created_at, updated_at`

func scanCustomization(row pgx.Row) (*entity.CategoryItemCustomization, error) {
	var c entity.CategoryItemCustomization
	err := row.Scan(&c.ID, &c.TenantID, &c.CategoryItemID, &c.Name,
		&c.PriceAdjustment, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomizationRepo) queryCustomizations(query string, args ...any) ([]*entity.CategoryItemCustomization, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryItemCustomization
	for rows.Next() {
		c, err := scanCustomization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customization: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListByTenant lista las customizations de un tenant (orden estable por nombre).
func (r *CustomizationRepo) ListByTenant(tenantID string) ([]*entity.CategoryItemCustomization, error) {
	return r.queryCustomizations(
		`SELECT `+customizationColumns+` FROM customizations WHERE tenant_id = $1 ORDER BY name ASC`,
		tenantID)
}

// ListByItemAndTenant lista las customizations de un item dentro del tenant.
func (r *CustomizationRepo) ListByItemAndTenant(itemID, tenantID string) ([]*entity.CategoryItemCustomization, error) {
	return r.queryCustomizations(
		`SELECT `+customizationColumns+` FROM customizations WHERE category_item_id = $1 AND tenant_id = $2 ORDER BY name ASC`,
		itemID, tenantID)
}

// GetByIDAndTenant obtiene una customization por ID dentro del tenant. (nil, nil) si no existe.
func (r *CustomizationRepo) GetByIDAndTenant(id, tenantID string) (*entity.CategoryItemCustomization, error) {
	query := `SELECT ` + customizationColumns + ` FROM customizations WHERE id = $1 AND tenant_id = $2`
	c, err := scanCustomization(r.q.QueryRow(context.Background(), query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customization: %w", err)
	}
	return c, nil
}

// Save inserta o actualiza una customization (upsert por id).
func (r *CustomizationRepo) Save(customization *entity.CategoryItemCustomization) error {
	query := `
		INSERT INTO customizations (id, tenant_id, category_item_id, name, price_adjustment, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			category_item_id = EXCLUDED.category_item_id, name = EXCLUDED.name,
			price_adjustment = EXCLUDED.price_adjustment, active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		customization.ID, customization.TenantID, customization.CategoryItemID,
		customization.Name, customization.PriceAdjustment, customization.Active,
		customization.CreatedAt, customization.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save customization: %w", err)
	}
	return nil
}

// SaveAll persiste en bloque (usado por el loader).
func (r *CustomizationRepo) SaveAll(customizations []*entity.CategoryItemCustomization) error {
	for _, c := range customizations {
		if err := r.Save(c); err != nil {
			return fmt.Errorf("save all customizations (%s): %w", c.Name, err)
		}
	}
	return nil
}

// ReplaceComponents reescribe el set de componentes de una customization.
func (r *CustomizationRepo) ReplaceComponents(customizationID string, componentIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM customization_components WHERE customization_id = $1`, customizationID); err != nil {
		return fmt.Errorf("clear customization components: %w", err)
	}
	for _, componentID := range componentIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO customization_components (customization_id, component_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			customizationID, componentID); err != nil {
			return fmt.Errorf("link customization component: %w", err)
		}
	}
	return nil
}

// ListComponents resuelve los componentes asociados a una customization.
func (r *CustomizationRepo) ListComponents(customizationID string) ([]*entity.Component, error) {
	query := `
		SELECT c.id, c.tenant_id, c.name, c.description, c.cost, c.is_allergenic, c.allergen_info, c.created_at, c.updated_at
		FROM components c
		JOIN customization_components cc ON cc.component_id = c.id
		WHERE cc.customization_id = $1
		ORDER BY c.name ASC`
	rows, err := r.q.Query(context.Background(), query, customizationID)
	if err != nil {
		return nil, fmt.Errorf("list customization components: %w", err)
	}
	defer rows.Close()
	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customization component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una customization del tenant.
func (r *CustomizationRepo) Delete(id, tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customizations WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete customization: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla completa (fase de reset del loader).
func (r *CustomizationRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customizations`)
	if err != nil {
		return fmt.Errorf("delete all customizations: %w", err)
	}
	return nil
}

// DeleteAllByTenant elimina todas las customizations de un tenant.
func (r *CustomizationRepo) DeleteAllByTenant(tenantID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customizations WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return fmt.Errorf("delete customizations by tenant: %w", err)
	}
	return nil
}

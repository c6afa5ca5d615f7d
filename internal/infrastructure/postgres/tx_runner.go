package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/catalogo-api/internal/application/loader"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ loader.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCatalogue inicia una transacción, ejecuta fn con los cuatro repos del
// catálogo atados a la tx y hace Commit o Rollback. Lo usa el loader para
// que las fases de carga sean atómicas.
func (r *TxRunner) RunCatalogue(ctx context.Context, fn func(
	compRepo repository.ComponentRepository,
	catRepo repository.CategoryRepository,
	itemRepo repository.CategoryItemRepository,
	custRepo repository.CustomizationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	compRepo := NewComponentRepository(tx)
	catRepo := NewCategoryRepository(tx)
	itemRepo := NewCategoryItemRepository(tx)
	custRepo := NewCustomizationRepository(tx)

	if err := fn(compRepo, catRepo, itemRepo, custRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

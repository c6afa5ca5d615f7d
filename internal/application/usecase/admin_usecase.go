package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/loader"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AdminUseCase expone las operaciones administrativas: recargar el catálogo
// de prueba completo y limpiar los datos de un tenant. El mutex serializa
// las recargas, el loader no admite corridas concurrentes.
type AdminUseCase struct {
	mu       sync.Mutex
	loader   *loader.Loader
	dataPath string

	compRepo repository.ComponentRepository
	catRepo  repository.CategoryRepository
	itemRepo repository.CategoryItemRepository
	custRepo repository.CustomizationRepository
	cache    MenuCache
}

// NewAdminUseCase construye el caso de uso administrativo.
func NewAdminUseCase(
	ld *loader.Loader,
	dataPath string,
	compRepo repository.ComponentRepository,
	catRepo repository.CategoryRepository,
	itemRepo repository.CategoryItemRepository,
	custRepo repository.CustomizationRepository,
	cache MenuCache,
) *AdminUseCase {
	return &AdminUseCase{
		loader:   ld,
		dataPath: dataPath,
		compRepo: compRepo,
		catRepo:  catRepo,
		itemRepo: itemRepo,
		custRepo: custRepo,
		cache:    cache,
	}
}

// ResetTestData descarta el catálogo actual y lo reconstruye desde el
// archivo de datos de prueba configurado.
func (uc *AdminUseCase) ResetTestData(ctx context.Context) (*dto.LoadReport, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	res, err := uc.loader.LoadFile(ctx, uc.dataPath)
	if err != nil {
		return nil, err
	}
	return &dto.LoadReport{
		Components:     res.Components,
		Categories:     res.Categories,
		Items:          res.Items,
		Customizations: res.Customizations,
		Skipped:        res.Skipped,
	}, nil
}

// ClearTenant borra todos los datos de catálogo de un tenant, en orden
// inverso a las FKs.
func (uc *AdminUseCase) ClearTenant(ctx context.Context, tenantID string) error {
	if err := uc.custRepo.DeleteAllByTenant(tenantID); err != nil {
		return fmt.Errorf("limpiar personalizaciones del tenant %s: %w", tenantID, err)
	}
	if err := uc.itemRepo.DeleteAllByTenant(tenantID); err != nil {
		return fmt.Errorf("limpiar items del tenant %s: %w", tenantID, err)
	}
	if err := uc.catRepo.DeleteAllByTenant(tenantID); err != nil {
		return fmt.Errorf("limpiar categorías del tenant %s: %w", tenantID, err)
	}
	if err := uc.compRepo.DeleteAllByTenant(tenantID); err != nil {
		return fmt.Errorf("limpiar componentes del tenant %s: %w", tenantID, err)
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return nil
}

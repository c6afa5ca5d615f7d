package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/tenant"
)

// CategoryItemUseCase casos de uso CRUD para items del catálogo.
// Las referencias (categoría, componentes) se verifican SIEMPRE dentro del
// tenant activo: un id válido de otro tenant se trata como inexistente.
type CategoryItemUseCase struct {
	itemRepo repository.CategoryItemRepository
	catRepo  repository.CategoryRepository
	compRepo repository.ComponentRepository
	custRepo repository.CustomizationRepository
	cache    MenuCache
}

// NewCategoryItemUseCase construye el caso de uso.
func NewCategoryItemUseCase(
	itemRepo repository.CategoryItemRepository,
	catRepo repository.CategoryRepository,
	compRepo repository.ComponentRepository,
	custRepo repository.CustomizationRepository,
	cache MenuCache,
) *CategoryItemUseCase {
	return &CategoryItemUseCase{itemRepo: itemRepo, catRepo: catRepo, compRepo: compRepo, custRepo: custRepo, cache: cache}
}

// List lista los items del tenant activo en orden de presentación.
func (uc *CategoryItemUseCase) List(ctx context.Context) ([]dto.CategoryItemResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toCategoryItemResponse(it, nil))
	}
	return out, nil
}

// GetByID obtiene un item del tenant activo con el resumen de sus componentes.
func (uc *CategoryItemUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryItemResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	components, err := uc.itemRepo.ListComponents(item.ID)
	if err != nil {
		return nil, err
	}
	return toCategoryItemResponse(item, components), nil
}

// Create crea un item para el tenant activo y asocia sus componentes.
func (uc *CategoryItemUseCase) Create(ctx context.Context, in dto.CategoryItemRequest) (*dto.CategoryItemResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryItemRequest(in); err != nil {
		return nil, err
	}
	category, err := uc.catRepo.GetByIDAndTenant(in.CategoryID, tenantID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewValidationError([]string{"categoryId no existe para este tenant"})
	}
	if exists, err := uc.itemRepo.ExistsByNameAndTenant(in.Name, tenantID); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrDuplicate
	}
	if exists, err := uc.itemRepo.ExistsBySKUAndTenant(in.SKU, tenantID); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrDuplicate
	}
	components, err := uc.resolveComponents(tenantID, in.ComponentIDs)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.CategoryItem{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		CategoryID:   category.ID,
		Name:         in.Name,
		Description:  in.Description,
		BasePrice:    in.BasePrice,
		ImageURL:     in.ImageURL,
		SKU:          in.SKU,
		DisplayOrder: in.DisplayOrder,
		Active:       in.Active == nil || *in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Save(item); err != nil {
		return nil, err
	}
	if err := uc.itemRepo.ReplaceComponents(item.ID, componentIDs(components)); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toCategoryItemResponse(item, components), nil
}

// Update actualiza un item existente del tenant activo. ComponentIDs
// reescribe el set completo de ingredientes.
func (uc *CategoryItemUseCase) Update(ctx context.Context, id string, in dto.CategoryItemRequest) (*dto.CategoryItemResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryItemRequest(in); err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.catRepo.GetByIDAndTenant(in.CategoryID, tenantID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewValidationError([]string{"categoryId no existe para este tenant"})
	}
	if item.Name != in.Name {
		if exists, err := uc.itemRepo.ExistsByNameAndTenant(in.Name, tenantID); err != nil {
			return nil, err
		} else if exists {
			return nil, domain.ErrDuplicate
		}
	}
	if item.SKU != in.SKU {
		if exists, err := uc.itemRepo.ExistsBySKUAndTenant(in.SKU, tenantID); err != nil {
			return nil, err
		} else if exists {
			return nil, domain.ErrDuplicate
		}
	}
	components, err := uc.resolveComponents(tenantID, in.ComponentIDs)
	if err != nil {
		return nil, err
	}
	item.CategoryID = category.ID
	item.Name = in.Name
	item.Description = in.Description
	item.BasePrice = in.BasePrice
	item.ImageURL = in.ImageURL
	item.SKU = in.SKU
	item.DisplayOrder = in.DisplayOrder
	if in.Active != nil {
		item.Active = *in.Active
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Save(item); err != nil {
		return nil, err
	}
	if err := uc.itemRepo.ReplaceComponents(item.ID, componentIDs(components)); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toCategoryItemResponse(item, components), nil
}

// Delete elimina un item del tenant activo junto con sus customizations.
// Solo cruza hacia abajo (las customizations pertenecen al item); nunca
// toca la categoría ni los componentes.
func (uc *CategoryItemUseCase) Delete(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	item, err := uc.itemRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	customizations, err := uc.custRepo.ListByItemAndTenant(item.ID, tenantID)
	if err != nil {
		return err
	}
	for _, c := range customizations {
		if err := uc.custRepo.Delete(c.ID, tenantID); err != nil {
			return err
		}
	}
	if err := uc.itemRepo.Delete(id, tenantID); err != nil {
		return err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return nil
}

// resolveComponents verifica cada componentId dentro del tenant. En la ruta
// de entidad única la referencia rota NO se descarta en silencio como en el
// loader: es un error de validación con la lista completa de ids faltantes.
func (uc *CategoryItemUseCase) resolveComponents(tenantID string, ids []string) ([]*entity.Component, error) {
	var missing []string
	components := make([]*entity.Component, 0, len(ids))
	for _, id := range ids {
		c, err := uc.compRepo.GetByIDAndTenant(id, tenantID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			missing = append(missing, "componentId no existe para este tenant: "+id)
			continue
		}
		components = append(components, c)
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing)
	}
	return components, nil
}

func componentIDs(components []*entity.Component) []string {
	ids := make([]string, 0, len(components))
	for _, c := range components {
		ids = append(ids, c.ID)
	}
	return ids
}

func toCategoryItemResponse(it *entity.CategoryItem, components []*entity.Component) *dto.CategoryItemResponse {
	out := &dto.CategoryItemResponse{
		ID:           it.ID,
		CategoryID:   it.CategoryID,
		Name:         it.Name,
		Description:  it.Description,
		BasePrice:    it.BasePrice,
		ImageURL:     it.ImageURL,
		SKU:          it.SKU,
		DisplayOrder: it.DisplayOrder,
		Active:       it.Active,
	}
	if len(components) > 0 {
		out.Components = toComponentSummaries(components)
	}
	return out
}

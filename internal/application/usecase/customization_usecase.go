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

// CustomizationUseCase casos de uso CRUD para customizations de items.
type CustomizationUseCase struct {
	custRepo repository.CustomizationRepository
	itemRepo repository.CategoryItemRepository
	compRepo repository.ComponentRepository
	cache    MenuCache
}

// NewCustomizationUseCase construye el caso de uso.
func NewCustomizationUseCase(
	custRepo repository.CustomizationRepository,
	itemRepo repository.CategoryItemRepository,
	compRepo repository.ComponentRepository,
	cache MenuCache,
) *CustomizationUseCase {
	return &CustomizationUseCase{custRepo: custRepo, itemRepo: itemRepo, compRepo: compRepo, cache: cache}
}

// ListByItem lista las customizations de un item del tenant activo.
func (uc *CustomizationUseCase) ListByItem(ctx context.Context, itemID string) ([]dto.CustomizationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByIDAndTenant(itemID, tenantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	customizations, err := uc.custRepo.ListByItemAndTenant(item.ID, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomizationResponse, 0, len(customizations))
	for _, c := range customizations {
		out = append(out, *toCustomizationResponse(c, nil))
	}
	return out, nil
}

// GetByID obtiene una customization del tenant activo con sus componentes.
func (uc *CustomizationUseCase) GetByID(ctx context.Context, id string) (*dto.CustomizationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	customization, err := uc.custRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if customization == nil {
		return nil, domain.ErrNotFound
	}
	components, err := uc.custRepo.ListComponents(customization.ID)
	if err != nil {
		return nil, err
	}
	return toCustomizationResponse(customization, components), nil
}

// Create crea una customization para el tenant activo.
func (uc *CustomizationUseCase) Create(ctx context.Context, in dto.CustomizationRequest) (*dto.CustomizationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCustomizationRequest(in); err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByIDAndTenant(in.CategoryItemID, tenantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewValidationError([]string{"categoryItemId no existe para este tenant"})
	}
	components, err := uc.resolveComponents(tenantID, in.ComponentIDs)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	customization := &entity.CategoryItemCustomization{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		CategoryItemID:  item.ID,
		Name:            in.Name,
		PriceAdjustment: in.PriceAdjustment,
		Active:          in.Active == nil || *in.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.custRepo.Save(customization); err != nil {
		return nil, err
	}
	if err := uc.custRepo.ReplaceComponents(customization.ID, componentIDs(components)); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toCustomizationResponse(customization, components), nil
}

// Update actualiza una customization existente del tenant activo.
func (uc *CustomizationUseCase) Update(ctx context.Context, id string, in dto.CustomizationRequest) (*dto.CustomizationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCustomizationRequest(in); err != nil {
		return nil, err
	}
	customization, err := uc.custRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if customization == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByIDAndTenant(in.CategoryItemID, tenantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewValidationError([]string{"categoryItemId no existe para este tenant"})
	}
	components, err := uc.resolveComponents(tenantID, in.ComponentIDs)
	if err != nil {
		return nil, err
	}
	customization.CategoryItemID = item.ID
	customization.Name = in.Name
	customization.PriceAdjustment = in.PriceAdjustment
	if in.Active != nil {
		customization.Active = *in.Active
	}
	customization.UpdatedAt = time.Now()
	if err := uc.custRepo.Save(customization); err != nil {
		return nil, err
	}
	if err := uc.custRepo.ReplaceComponents(customization.ID, componentIDs(components)); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toCustomizationResponse(customization, components), nil
}

// Delete elimina una customization del tenant activo.
func (uc *CustomizationUseCase) Delete(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	customization, err := uc.custRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return err
	}
	if customization == nil {
		return domain.ErrNotFound
	}
	if err := uc.custRepo.Delete(id, tenantID); err != nil {
		return err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return nil
}

func (uc *CustomizationUseCase) resolveComponents(tenantID string, ids []string) ([]*entity.Component, error) {
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

func toCustomizationResponse(c *entity.CategoryItemCustomization, components []*entity.Component) *dto.CustomizationResponse {
	out := &dto.CustomizationResponse{
		ID:              c.ID,
		CategoryItemID:  c.CategoryItemID,
		Name:            c.Name,
		PriceAdjustment: c.PriceAdjustment,
		Active:          c.Active,
	}
	if len(components) > 0 {
		out.Components = toComponentSummaries(components)
	}
	return out
}

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

// CategoryUseCase casos de uso CRUD para categorías del catálogo.
// El tenant activo se lee del contexto UNA vez al inicio de cada método.
type CategoryUseCase struct {
	catRepo  repository.CategoryRepository
	itemRepo repository.CategoryItemRepository
	cache    MenuCache
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(catRepo repository.CategoryRepository, itemRepo repository.CategoryItemRepository, cache MenuCache) *CategoryUseCase {
	return &CategoryUseCase{catRepo: catRepo, itemRepo: itemRepo, cache: cache}
}

// List lista las categorías del tenant activo en orden de presentación.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.catRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c, nil))
	}
	return out, nil
}

// GetByID obtiene una categoría del tenant activo con el resumen de sus items.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	category, err := uc.catRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByCategoryAndTenant(category.ID, tenantID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, items), nil
}

// Create crea una categoría para el tenant activo.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryRequest(in); err != nil {
		return nil, err
	}
	exists, err := uc.catRepo.ExistsByNameAndTenant(in.Name, tenantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Name:         in.Name,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		Active:       in.Active == nil || *in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.catRepo.Save(category); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toCategoryResponse(category, nil), nil
}

// Update actualiza una categoría existente del tenant activo.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryRequest(in); err != nil {
		return nil, err
	}
	category, err := uc.catRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.Name != in.Name {
		exists, err := uc.catRepo.ExistsByNameAndTenant(in.Name, tenantID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicate
		}
	}
	category.Name = in.Name
	category.Description = in.Description
	category.DisplayOrder = in.DisplayOrder
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.catRepo.Save(category); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toCategoryResponse(category, nil), nil
}

// Delete elimina una categoría del tenant activo. No elimina sus items:
// una categoría con items viola la FK y el error sube al caller.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	category, err := uc.catRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := uc.catRepo.Delete(id, tenantID); err != nil {
		return err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return nil
}

func toCategoryResponse(c *entity.Category, items []*entity.CategoryItem) *dto.CategoryResponse {
	out := &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.CategoryItemSummary{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			BasePrice:   it.BasePrice,
			ImageURL:    it.ImageURL,
		})
	}
	return out
}

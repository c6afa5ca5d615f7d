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

// ComponentUseCase casos de uso CRUD para componentes (ingredientes).
type ComponentUseCase struct {
	compRepo repository.ComponentRepository
	cache    MenuCache
}

// NewComponentUseCase construye el caso de uso.
func NewComponentUseCase(compRepo repository.ComponentRepository, cache MenuCache) *ComponentUseCase {
	return &ComponentUseCase{compRepo: compRepo, cache: cache}
}

// List lista los componentes del tenant activo.
func (uc *ComponentUseCase) List(ctx context.Context) ([]dto.ComponentResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	components, err := uc.compRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComponentResponse, 0, len(components))
	for _, c := range components {
		out = append(out, *toComponentResponse(c))
	}
	return out, nil
}

// GetByID obtiene un componente del tenant activo.
func (uc *ComponentUseCase) GetByID(ctx context.Context, id string) (*dto.ComponentResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	component, err := uc.compRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, domain.ErrNotFound
	}
	return toComponentResponse(component), nil
}

// Create crea un componente para el tenant activo.
func (uc *ComponentUseCase) Create(ctx context.Context, in dto.ComponentRequest) (*dto.ComponentResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateComponentRequest(in); err != nil {
		return nil, err
	}
	exists, err := uc.compRepo.ExistsByNameAndTenant(in.Name, tenantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	component := &entity.Component{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Name:         in.Name,
		Description:  in.Description,
		Cost:         in.Cost,
		IsAllergenic: in.IsAllergenic,
		AllergenInfo: in.AllergenInfo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.compRepo.Save(component); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toComponentResponse(component), nil
}

// Update actualiza un componente existente del tenant activo.
func (uc *ComponentUseCase) Update(ctx context.Context, id string, in dto.ComponentRequest) (*dto.ComponentResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateComponentRequest(in); err != nil {
		return nil, err
	}
	component, err := uc.compRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, domain.ErrNotFound
	}
	if component.Name != in.Name {
		exists, err := uc.compRepo.ExistsByNameAndTenant(in.Name, tenantID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicate
		}
	}
	component.Name = in.Name
	component.Description = in.Description
	component.Cost = in.Cost
	component.IsAllergenic = in.IsAllergenic
	component.AllergenInfo = in.AllergenInfo
	component.UpdatedAt = time.Now()
	if err := uc.compRepo.Save(component); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return toComponentResponse(component), nil
}

// Delete elimina un componente del tenant activo. Las filas de asociación
// con items y customizations caen en cascada.
func (uc *ComponentUseCase) Delete(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	component, err := uc.compRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	if err := uc.compRepo.Delete(id, tenantID); err != nil {
		return err
	}
	_ = uc.cache.Invalidate(ctx, tenantID)
	return nil
}

func toComponentResponse(c *entity.Component) *dto.ComponentResponse {
	return &dto.ComponentResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Cost:         c.Cost,
		IsAllergenic: c.IsAllergenic,
		AllergenInfo: c.AllergenInfo,
	}
}

func toComponentSummaries(components []*entity.Component) []dto.ComponentSummary {
	out := make([]dto.ComponentSummary, 0, len(components))
	for _, c := range components {
		out = append(out, dto.ComponentSummary{
			ID:           c.ID,
			Name:         c.Name,
			IsAllergenic: c.IsAllergenic,
		})
	}
	return out
}

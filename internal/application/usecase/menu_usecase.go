package usecase

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/tenant"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// MenuUseCase compone la carta completa de un tenant: categorías activas en
// orden de presentación con sus items activos, ingredientes y variantes.
// Cache-aside: la composición es cara (varias consultas) y la carta cambia
// poco, así que se cachea por tenant con TTL corto.
type MenuUseCase struct {
	catRepo  repository.CategoryRepository
	itemRepo repository.CategoryItemRepository
	custRepo repository.CustomizationRepository
	cache    MenuCache
	log      *logger.Logger
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(
	catRepo repository.CategoryRepository,
	itemRepo repository.CategoryItemRepository,
	custRepo repository.CustomizationRepository,
	cache MenuCache,
	log *logger.Logger,
) *MenuUseCase {
	return &MenuUseCase{catRepo: catRepo, itemRepo: itemRepo, custRepo: custRepo, cache: cache, log: log}
}

// GetMenu devuelve la carta del tenant activo, desde caché si hay entrada.
// Un fallo de caché nunca rompe la lectura: se registra y se recompone.
func (uc *MenuUseCase) GetMenu(ctx context.Context) (*dto.MenuResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := uc.cache.Get(ctx, tenantID); err != nil {
		uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("lectura de caché de menú falló")
	} else if payload != nil {
		var menu dto.MenuResponse
		if err := json.Unmarshal(payload, &menu); err == nil {
			return &menu, nil
		}
		uc.log.Warn().Str("tenant_id", tenantID).Msg("entrada de caché de menú corrupta, recomponiendo")
	}

	menu, err := uc.compose(tenantID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(menu); err == nil {
		if err := uc.cache.Set(ctx, tenantID, payload); err != nil {
			uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("escritura de caché de menú falló")
		}
	}
	return menu, nil
}

func (uc *MenuUseCase) compose(tenantID string) (*dto.MenuResponse, error) {
	categories, err := uc.catRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	menu := &dto.MenuResponse{TenantID: tenantID, Categories: []dto.MenuCategory{}}
	for _, cat := range categories {
		if !cat.Active {
			continue
		}
		items, err := uc.itemRepo.ListByCategoryAndTenant(cat.ID, tenantID)
		if err != nil {
			return nil, err
		}
		menuCat := dto.MenuCategory{
			ID:           cat.ID,
			Name:         cat.Name,
			Description:  cat.Description,
			DisplayOrder: cat.DisplayOrder,
			Items:        []dto.MenuItem{},
		}
		for _, it := range items {
			if !it.Active {
				continue
			}
			components, err := uc.itemRepo.ListComponents(it.ID)
			if err != nil {
				return nil, err
			}
			customizations, err := uc.custRepo.ListByItemAndTenant(it.ID, tenantID)
			if err != nil {
				return nil, err
			}
			menuItem := dto.MenuItem{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				BasePrice:   it.BasePrice,
				ImageURL:    it.ImageURL,
				Components:  toComponentSummaries(components),
			}
			for _, c := range customizations {
				if !c.Active {
					continue
				}
				menuItem.Customizations = append(menuItem.Customizations, dto.MenuCustomization{
					ID:              c.ID,
					Name:            c.Name,
					PriceAdjustment: c.PriceAdjustment,
				})
			}
			menuCat.Items = append(menuCat.Items, menuItem)
		}
		menu.Categories = append(menu.Categories, menuCat)
	}
	return menu, nil
}

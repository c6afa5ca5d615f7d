package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

type menuHarness struct {
	uc    *usecase.MenuUseCase
	comps *memComponentRepo
	cats  *memCategoryRepo
	items *memItemRepo
	custs *memCustomizationRepo
	cache *memCache
}

func newMenuHarness() *menuHarness {
	comps := newMemComponentRepo()
	cats := newMemCategoryRepo()
	items := newMemItemRepo(comps)
	custs := newMemCustomizationRepo(comps)
	cache := newMemCache()
	return &menuHarness{
		uc:    usecase.NewMenuUseCase(cats, items, custs, cache, logger.Nop()),
		comps: comps,
		cats:  cats,
		items: items,
		custs: custs,
		cache: cache,
	}
}

// seedMenu arma un catálogo mínimo: una categoría activa con un item activo
// y uno inactivo, una categoría inactiva, y una customization inactiva.
func (h *menuHarness) seedMenu(t *testing.T) {
	t.Helper()
	require.NoError(t, h.cats.Save(&entity.Category{ID: "cat1", TenantID: "t1", Name: "Burgers", Active: true}))
	require.NoError(t, h.cats.Save(&entity.Category{ID: "cat2", TenantID: "t1", Name: "Seasonal", Active: false}))
	require.NoError(t, h.comps.Save(&entity.Component{ID: "comp1", TenantID: "t1", Name: "Lettuce", IsAllergenic: false}))
	require.NoError(t, h.items.Save(&entity.CategoryItem{
		ID: "i1", TenantID: "t1", CategoryID: "cat1", Name: "Classic",
		BasePrice: decimal.RequireFromString("8.50"), Active: true,
	}))
	require.NoError(t, h.items.Save(&entity.CategoryItem{
		ID: "i2", TenantID: "t1", CategoryID: "cat1", Name: "Retirado", Active: false,
	}))
	require.NoError(t, h.items.ReplaceComponents("i1", []string{"comp1"}))
	require.NoError(t, h.custs.Save(&entity.CategoryItemCustomization{
		ID: "cu1", TenantID: "t1", CategoryItemID: "i1", Name: "Extra Lettuce",
		PriceAdjustment: decimal.RequireFromString("0.50"), Active: true,
	}))
	require.NoError(t, h.custs.Save(&entity.CategoryItemCustomization{
		ID: "cu2", TenantID: "t1", CategoryItemID: "i1", Name: "Retirada", Active: false,
	}))
}

// La carta solo incluye categorías, items y customizations activos.
func TestMenuUseCase_SoloIncluyeActivos(t *testing.T) {
	h := newMenuHarness()
	h.seedMenu(t)

	menu, err := h.uc.GetMenu(tenantCtx("t1"))
	require.NoError(t, err)

	require.Len(t, menu.Categories, 1, "la categoría inactiva no va en la carta")
	cat := menu.Categories[0]
	assert.Equal(t, "Burgers", cat.Name)
	require.Len(t, cat.Items, 1, "el item inactivo no va en la carta")

	item := cat.Items[0]
	assert.Equal(t, "Classic", item.Name)
	require.Len(t, item.Components, 1)
	assert.Equal(t, "Lettuce", item.Components[0].Name)
	require.Len(t, item.Customizations, 1, "la customization inactiva no va en la carta")
	assert.Equal(t, "Extra Lettuce", item.Customizations[0].Name)
}

// La primera lectura compone y cachea; la segunda sirve desde caché.
func TestMenuUseCase_CacheAside(t *testing.T) {
	h := newMenuHarness()
	h.seedMenu(t)

	_, err := h.uc.GetMenu(tenantCtx("t1"))
	require.NoError(t, err)
	require.Contains(t, h.cache.entries, "t1", "la primera lectura debe poblar el caché")

	// Vaciar la base: si la segunda lectura sirve desde caché, la carta
	// sigue completa.
	require.NoError(t, h.cats.DeleteAll())
	menu, err := h.uc.GetMenu(tenantCtx("t1"))
	require.NoError(t, err)
	assert.Len(t, menu.Categories, 1)
}

// Una entrada corrupta en caché no rompe la lectura: se recompone.
func TestMenuUseCase_EntradaCorruptaRecompone(t *testing.T) {
	h := newMenuHarness()
	h.seedMenu(t)
	h.cache.entries["t1"] = []byte("{esto no es json")

	menu, err := h.uc.GetMenu(tenantCtx("t1"))
	require.NoError(t, err)
	assert.Len(t, menu.Categories, 1)
}

// Un caché caído tampoco rompe la lectura.
func TestMenuUseCase_CacheCaidoRecompone(t *testing.T) {
	h := newMenuHarness()
	h.seedMenu(t)
	h.cache.getErr = errors.New("conexión rechazada")
	h.cache.setErr = errors.New("conexión rechazada")

	menu, err := h.uc.GetMenu(tenantCtx("t1"))
	require.NoError(t, err)
	assert.Len(t, menu.Categories, 1)
}

// Tenant sin catálogo: carta vacía, no error.
func TestMenuUseCase_TenantVacioDevuelveCartaVacia(t *testing.T) {
	h := newMenuHarness()

	menu, err := h.uc.GetMenu(tenantCtx("desconocido"))
	require.NoError(t, err)
	assert.Equal(t, "desconocido", menu.TenantID)
	assert.Empty(t, menu.Categories)
}

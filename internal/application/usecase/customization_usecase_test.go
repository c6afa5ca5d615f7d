package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

type customizationHarness struct {
	uc    *usecase.CustomizationUseCase
	comps *memComponentRepo
	items *memItemRepo
	custs *memCustomizationRepo
	cache *memCache
}

func newCustomizationHarness() *customizationHarness {
	comps := newMemComponentRepo()
	items := newMemItemRepo(comps)
	custs := newMemCustomizationRepo(comps)
	cache := newMemCache()
	return &customizationHarness{
		uc:    usecase.NewCustomizationUseCase(custs, items, comps, cache),
		comps: comps,
		items: items,
		custs: custs,
		cache: cache,
	}
}

// item1 y comp1 pertenecen a t1; item2 y comp2 a t2.
func (h *customizationHarness) seed(t *testing.T) {
	t.Helper()
	now := time.Now()
	require.NoError(t, h.items.Save(&entity.CategoryItem{
		ID: "item1", TenantID: "t1", CategoryID: "cat1", Name: "Classic Burger",
		SKU: "T1-001", Active: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, h.items.Save(&entity.CategoryItem{
		ID: "item2", TenantID: "t2", CategoryID: "cat2", Name: "Classic Burger",
		SKU: "T2-001", Active: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, h.comps.Save(&entity.Component{
		ID: "comp1", TenantID: "t1", Name: "Bacon", Cost: decimal.RequireFromString("1.20"),
	}))
	require.NoError(t, h.comps.Save(&entity.Component{
		ID: "comp2", TenantID: "t2", Name: "Bacon", Cost: decimal.RequireFromString("1.10"),
	}))
}

func validCustomizationRequest() dto.CustomizationRequest {
	return dto.CustomizationRequest{
		CategoryItemID:  "item1",
		Name:            "Extra Bacon",
		PriceAdjustment: decimal.RequireFromString("1.50"),
		ComponentIDs:    []string{"comp1"},
	}
}

func TestCustomizationUseCase_SinTenantFallaRapido(t *testing.T) {
	h := newCustomizationHarness()
	ctx := context.Background()

	_, err := h.uc.ListByItem(ctx, "item1")
	assert.ErrorIs(t, err, domain.ErrTenantMissing)

	_, err = h.uc.Create(ctx, validCustomizationRequest())
	assert.ErrorIs(t, err, domain.ErrTenantMissing)

	err = h.uc.Delete(ctx, "algún-id")
	assert.ErrorIs(t, err, domain.ErrTenantMissing)
}

func TestCustomizationUseCase_Create_ReportaTodasLasViolaciones(t *testing.T) {
	h := newCustomizationHarness()

	_, err := h.uc.Create(tenantCtx("t1"), dto.CustomizationRequest{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
	assert.Contains(t, verr.Violations, "categoryItemId es requerido")
	assert.Contains(t, verr.Violations, "name es requerido")
}

// El item referenciado debe existir bajo el tenant activo; uno de otro
// tenant es invisible.
func TestCustomizationUseCase_Create_ItemDeOtroTenantNoResuelve(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)

	req := validCustomizationRequest()
	req.ComponentIDs = nil
	_, err := h.uc.Create(tenantCtx("t2"), req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "categoryItemId no existe para este tenant")
}

// Los componentIds se resuelven contra el tenant activo: comp2 es de t2 y
// por lo tanto roto visto desde t1.
func TestCustomizationUseCase_Create_ComponenteDeOtroTenantEsRoto(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)

	req := validCustomizationRequest()
	req.ComponentIDs = []string{"comp1", "comp2"}
	_, err := h.uc.Create(tenantCtx("t1"), req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Contains(t, verr.Violations[0], "comp2")
}

func TestCustomizationUseCase_Create_AsociaComponentesEInvalidaCache(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)

	out, err := h.uc.Create(tenantCtx("t1"), validCustomizationRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "item1", out.CategoryItemID)
	require.Len(t, out.Components, 1)
	assert.Equal(t, "Bacon", out.Components[0].Name)
	assert.Equal(t, []string{"t1"}, h.cache.invalidated)
}

func TestCustomizationUseCase_ListByItem_SoloDelItemYTenant(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)

	_, err := h.uc.Create(tenantCtx("t1"), validCustomizationRequest())
	require.NoError(t, err)
	_, err = h.uc.Create(tenantCtx("t2"), dto.CustomizationRequest{
		CategoryItemID:  "item2",
		Name:            "Extra Bacon",
		PriceAdjustment: decimal.RequireFromString("1.40"),
	})
	require.NoError(t, err)

	out, err := h.uc.ListByItem(tenantCtx("t1"), "item1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "item1", out[0].CategoryItemID)

	// item2 es de t2: desde t1 no existe.
	_, err = h.uc.ListByItem(tenantCtx("t1"), "item2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomizationUseCase_GetByID_IncluyeComponentes(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)

	created, err := h.uc.Create(tenantCtx("t1"), validCustomizationRequest())
	require.NoError(t, err)

	out, err := h.uc.GetByID(tenantCtx("t1"), created.ID)
	require.NoError(t, err)
	require.Len(t, out.Components, 1)
	assert.Equal(t, "comp1", out.Components[0].ID)

	_, err = h.uc.GetByID(tenantCtx("t2"), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomizationUseCase_Update_ReemplazaComponentes(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)
	require.NoError(t, h.comps.Save(&entity.Component{
		ID: "comp3", TenantID: "t1", Name: "Cheese", Cost: decimal.RequireFromString("0.80"),
	}))

	created, err := h.uc.Create(tenantCtx("t1"), validCustomizationRequest())
	require.NoError(t, err)

	req := validCustomizationRequest()
	req.Name = "Extra Cheese"
	req.PriceAdjustment = decimal.RequireFromString("-0.50")
	req.ComponentIDs = []string{"comp3"}
	out, err := h.uc.Update(tenantCtx("t1"), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Extra Cheese", out.Name)
	assert.True(t, out.PriceAdjustment.Equal(decimal.RequireFromString("-0.50")))
	require.Len(t, out.Components, 1)
	assert.Equal(t, "comp3", out.Components[0].ID)
}

func TestCustomizationUseCase_Delete_EsPorTenant(t *testing.T) {
	h := newCustomizationHarness()
	h.seed(t)

	created, err := h.uc.Create(tenantCtx("t1"), validCustomizationRequest())
	require.NoError(t, err)

	// Desde t2 la customization de t1 no existe.
	err = h.uc.Delete(tenantCtx("t2"), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	h.cache.invalidated = nil
	require.NoError(t, h.uc.Delete(tenantCtx("t1"), created.ID))
	assert.Equal(t, []string{"t1"}, h.cache.invalidated)

	_, err = h.uc.GetByID(tenantCtx("t1"), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

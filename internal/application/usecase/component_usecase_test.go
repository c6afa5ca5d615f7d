package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

func newComponentHarness() (*usecase.ComponentUseCase, *memComponentRepo, *memCache) {
	comps := newMemComponentRepo()
	cache := newMemCache()
	return usecase.NewComponentUseCase(comps, cache), comps, cache
}

func validComponentRequest() dto.ComponentRequest {
	return dto.ComponentRequest{
		Name:         "Tomato",
		Cost:         decimal.RequireFromString("0.25"),
		IsAllergenic: false,
	}
}

func TestComponentUseCase_SinTenantFallaRapido(t *testing.T) {
	uc, _, _ := newComponentHarness()
	ctx := context.Background()

	_, err := uc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrTenantMissing)

	_, err = uc.Create(ctx, validComponentRequest())
	assert.ErrorIs(t, err, domain.ErrTenantMissing)
}

func TestComponentUseCase_Create_CostoNegativoEsViolacion(t *testing.T) {
	uc, _, _ := newComponentHarness()

	req := validComponentRequest()
	req.Name = ""
	req.Cost = decimal.RequireFromString("-0.10")
	_, err := uc.Create(tenantCtx("t1"), req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
	assert.Contains(t, verr.Violations, "cost debe ser no negativo")
}

// La unicidad de nombre es por tenant: el mismo nombre en otro tenant no
// es un duplicado.
func TestComponentUseCase_Create_DuplicadoPorTenant(t *testing.T) {
	uc, _, cache := newComponentHarness()

	_, err := uc.Create(tenantCtx("t1"), validComponentRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, cache.invalidated)

	_, err = uc.Create(tenantCtx("t1"), validComponentRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(tenantCtx("t2"), validComponentRequest())
	assert.NoError(t, err)
}

// Guardar con el mismo nombre no debe chocar contra sí mismo.
func TestComponentUseCase_Update_MismoNombreNoEsDuplicado(t *testing.T) {
	uc, _, _ := newComponentHarness()

	created, err := uc.Create(tenantCtx("t1"), validComponentRequest())
	require.NoError(t, err)

	req := validComponentRequest()
	req.Cost = decimal.RequireFromString("0.30")
	out, err := uc.Update(tenantCtx("t1"), created.ID, req)
	require.NoError(t, err)
	assert.True(t, out.Cost.Equal(decimal.RequireFromString("0.30")))

	_, err = uc.Create(tenantCtx("t1"), dto.ComponentRequest{
		Name: "Onion", Cost: decimal.RequireFromString("0.15"),
	})
	require.NoError(t, err)

	req.Name = "Onion"
	_, err = uc.Update(tenantCtx("t1"), created.ID, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestComponentUseCase_GetByID_NoCruzaTenants(t *testing.T) {
	uc, _, _ := newComponentHarness()

	created, err := uc.Create(tenantCtx("t1"), validComponentRequest())
	require.NoError(t, err)

	out, err := uc.GetByID(tenantCtx("t1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", out.Name)

	_, err = uc.GetByID(tenantCtx("t2"), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComponentUseCase_Delete(t *testing.T) {
	uc, _, cache := newComponentHarness()

	created, err := uc.Create(tenantCtx("t1"), validComponentRequest())
	require.NoError(t, err)

	err = uc.Delete(tenantCtx("t2"), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cache.invalidated = nil
	require.NoError(t, uc.Delete(tenantCtx("t1"), created.ID))
	assert.Equal(t, []string{"t1"}, cache.invalidated)

	_, err = uc.GetByID(tenantCtx("t1"), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/internal/domain/tenant"
)

// buildTenantApp monta una ruta con TenantMiddleware y un handler que
// devuelve el tenant visto en el context.Context de la petición.
func buildTenantApp() *fiber.App {
	app := fiber.New()
	app.Get("/tenants/:tenantId/whoami", apphttp.TenantMiddleware(), func(c *fiber.Ctx) error {
		id, err := tenant.FromContext(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"tenant": id})
	})
	return app
}

// Caso base: el tenant del path llega al contexto de la petición.
func TestTenantMiddleware_PropagaTenantAlContexto(t *testing.T) {
	app := buildTenantApp()

	req := httptest.NewRequest(http.MethodGet, "/tenants/la-terraza/whoami", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "la-terraza", body["tenant"])
}

// Peticiones concurrentes de tenants distintos: cada una debe ver SU tenant.
// El tenant viaja en el contexto de la petición, nunca en estado compartido.
func TestTenantMiddleware_PeticionesConcurrentesNoSeMezclan(t *testing.T) {
	app := buildTenantApp()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			want := fmt.Sprintf("tenant-%d", n)
			req := httptest.NewRequest(http.MethodGet, "/tenants/"+want+"/whoami", nil)
			resp, err := app.Test(req, -1)
			if err != nil {
				errs <- err
				return
			}
			defer resp.Body.Close()

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				errs <- err
				return
			}
			if body["tenant"] != want {
				errs <- fmt.Errorf("esperaba tenant %q, llegó %q", want, body["tenant"])
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// Sin tenant en el contexto, FromContext falla rápido.
func TestTenantMiddleware_SinTenantFallaRapido(t *testing.T) {
	app := fiber.New()
	// Ruta sin el middleware: el handler no debe encontrar tenant.
	app.Get("/sin-tenant", func(c *fiber.Ctx) error {
		_, err := tenant.FromContext(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/sin-tenant", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

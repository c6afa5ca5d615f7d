package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/tenant"
)

// TenantMiddleware extrae el tenant del path (:tenantId) y lo propaga en el
// context.Context de la petición. Cada petición lleva su propio contexto,
// así dos tenants concurrentes nunca se pisan.
func TenantMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID := c.Params("tenantId")
		if tenantID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TENANT_MISSING", Message: "tenantId es requerido en la ruta"})
		}
		c.SetUserContext(tenant.WithTenant(c.UserContext(), tenantID))
		return c.Next()
	}
}

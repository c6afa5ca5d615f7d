package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// AdminHandler expone las operaciones administrativas de datos de prueba.
// Solo se registra fuera de producción.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ResetTestData godoc
// @Summary      Recargar el catálogo de prueba
// @Description  Descarta todo el catálogo y lo reconstruye desde el archivo de datos de prueba. Las filas inválidas se descartan y se cuentan en skipped.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LoadReport
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/reset-test-data [post]
func (h *AdminHandler) ResetTestData(c *fiber.Ctx) error {
	out, err := h.uc.ResetTestData(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ClearTenant godoc
// @Summary      Borrar los datos de un tenant
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/tenants/{tenantId}/data [delete]
func (h *AdminHandler) ClearTenant(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")
	if tenantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TENANT_MISSING", Message: "tenantId es requerido en la ruta"})
	}
	if err := h.uc.ClearTenant(c.UserContext(), tenantID); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "datos del tenant eliminados"})
}

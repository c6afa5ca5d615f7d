package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// MenuHandler expone la carta compuesta del tenant.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// GetMenu godoc
// @Summary      Obtener la carta del tenant
// @Description  Categorías activas con sus items y personalizaciones activas. Se sirve desde caché cuando hay entrada vigente.
// @Tags         menu
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Success      200  {object}  dto.MenuResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/menu [get]
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	out, err := h.uc.GetMenu(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

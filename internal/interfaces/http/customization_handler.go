package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CustomizationHandler maneja las peticiones HTTP para personalizaciones de items.
type CustomizationHandler struct {
	uc *usecase.CustomizationUseCase
}

// NewCustomizationHandler construye el handler.
func NewCustomizationHandler(uc *usecase.CustomizationUseCase) *CustomizationHandler {
	return &CustomizationHandler{uc: uc}
}

// ListByItem godoc
// @Summary      Listar personalizaciones de un item
// @Tags         customizations
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        itemId    path  string  true  "ID del item"
// @Success      200  {array}   dto.CustomizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/items/{itemId}/customizations [get]
func (h *CustomizationHandler) ListByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByItem(c.UserContext(), c.Params("itemId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener personalización por ID
// @Tags         customizations
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        id        path  string  true  "ID de la personalización"
// @Success      200  {object}  dto.CustomizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/customizations/{id} [get]
func (h *CustomizationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear personalización
// @Tags         customizations
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string                    true  "ID del tenant"
// @Param        body      body  dto.CustomizationRequest  true  "Datos de la personalización"
// @Success      201  {object}  dto.CustomizationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/customizations [post]
func (h *CustomizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar personalización
// @Tags         customizations
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string                    true  "ID del tenant"
// @Param        id        path  string                    true  "ID de la personalización"
// @Param        body      body  dto.CustomizationRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.CustomizationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/customizations/{id} [put]
func (h *CustomizationHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar personalización
// @Tags         customizations
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        id        path  string  true  "ID de la personalización"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/customizations/{id} [delete]
func (h *CustomizationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "personalización eliminada"})
}

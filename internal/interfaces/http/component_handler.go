package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ComponentHandler maneja las peticiones HTTP para componentes (ingredientes).
type ComponentHandler struct {
	uc *usecase.ComponentUseCase
}

// NewComponentHandler construye el handler.
func NewComponentHandler(uc *usecase.ComponentUseCase) *ComponentHandler {
	return &ComponentHandler{uc: uc}
}

// List godoc
// @Summary      Listar componentes del tenant
// @Tags         components
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Success      200  {array}   dto.ComponentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/components [get]
func (h *ComponentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener componente por ID
// @Tags         components
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        id        path  string  true  "ID del componente"
// @Success      200  {object}  dto.ComponentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/components/{id} [get]
func (h *ComponentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear componente
// @Tags         components
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string                true  "ID del tenant"
// @Param        body      body  dto.ComponentRequest  true  "Datos del componente"
// @Success      201  {object}  dto.ComponentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/components [post]
func (h *ComponentHandler) Create(c *fiber.Ctx) error {
	var in dto.ComponentRequest
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
// @Summary      Actualizar componente
// @Tags         components
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string                true  "ID del tenant"
// @Param        id        path  string                true  "ID del componente"
// @Param        body      body  dto.ComponentRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.ComponentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/components/{id} [put]
func (h *ComponentHandler) Update(c *fiber.Ctx) error {
	var in dto.ComponentRequest
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
// @Summary      Eliminar componente
// @Tags         components
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        id        path  string  true  "ID del componente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/components/{id} [delete]
func (h *ComponentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "componente eliminado"})
}

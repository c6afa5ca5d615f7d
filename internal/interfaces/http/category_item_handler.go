package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CategoryItemHandler maneja las peticiones HTTP para items del catálogo.
type CategoryItemHandler struct {
	uc *usecase.CategoryItemUseCase
}

// NewCategoryItemHandler construye el handler.
func NewCategoryItemHandler(uc *usecase.CategoryItemUseCase) *CategoryItemHandler {
	return &CategoryItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar items del tenant
// @Tags         items
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Success      200  {array}   dto.CategoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/items [get]
func (h *CategoryItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener item con sus componentes
// @Tags         items
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        id        path  string  true  "ID del item"
// @Success      200  {object}  dto.CategoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/items/{id} [get]
func (h *CategoryItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string                   true  "ID del tenant"
// @Param        body      body  dto.CategoryItemRequest  true  "Datos del item"
// @Success      201  {object}  dto.CategoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/items [post]
func (h *CategoryItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryItemRequest
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
// @Summary      Actualizar item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string                   true  "ID del tenant"
// @Param        id        path  string                   true  "ID del item"
// @Param        body      body  dto.CategoryItemRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.CategoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/items/{id} [put]
func (h *CategoryItemHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryItemRequest
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
// @Summary      Eliminar item (y sus personalizaciones)
// @Tags         items
// @Produce      json
// @Param        tenantId  path  string  true  "ID del tenant"
// @Param        id        path  string  true  "ID del item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tenants/{tenantId}/items/{id} [delete]
func (h *CategoryItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "item eliminado"})
}

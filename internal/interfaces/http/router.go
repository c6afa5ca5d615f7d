package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC      *usecase.CategoryUseCase
	ComponentUC     *usecase.ComponentUseCase
	CategoryItemUC  *usecase.CategoryItemUseCase
	CustomizationUC *usecase.CustomizationUseCase
	MenuUC          *usecase.MenuUseCase
	AdminUC         *usecase.AdminUseCase

	// EnableAdmin registra la superficie administrativa (solo fuera de producción).
	EnableAdmin bool
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Todo el catálogo vive bajo el tenant del path.
	tenants := api.Group("/tenants/:tenantId", TenantMiddleware())

	// Categories
	categories := tenants.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Components
	components := tenants.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	components.Get("/", componentHandler.List)
	components.Post("/", componentHandler.Create)
	components.Get("/:id", componentHandler.GetByID)
	components.Put("/:id", componentHandler.Update)
	components.Delete("/:id", componentHandler.Delete)

	// Items
	items := tenants.Group("/items")
	itemHandler := NewCategoryItemHandler(deps.CategoryItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Customizations (anidadas por item para listar, planas para el resto)
	customizationHandler := NewCustomizationHandler(deps.CustomizationUC)
	items.Get("/:itemId/customizations", customizationHandler.ListByItem)
	customizations := tenants.Group("/customizations")
	customizations.Post("/", customizationHandler.Create)
	customizations.Get("/:id", customizationHandler.GetByID)
	customizations.Put("/:id", customizationHandler.Update)
	customizations.Delete("/:id", customizationHandler.Delete)

	// Menú compuesto (lectura pública)
	menuHandler := NewMenuHandler(deps.MenuUC)
	tenants.Get("/menu", menuHandler.GetMenu)

	// Superficie administrativa (protegida, solo fuera de producción)
	if deps.EnableAdmin {
		admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))
		adminHandler := NewAdminHandler(deps.AdminUC)
		admin.Post("/reset-test-data", adminHandler.ResetTestData)
		admin.Delete("/tenants/:tenantId/data", adminHandler.ClearTenant)
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/auth"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/importer"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WorkerUC   *auth.WorkerUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ImportUC   *importer.ImportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API bajo /api/admin.
func Router(app *fiber.App, deps RouterDeps) {
	admin := app.Group("/api/admin")

	workerHandler := NewWorkerHandler(deps.WorkerUC)

	// Login (público)
	admin.Post("/login-trabajador", workerHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := admin.Group("/", AuthMiddleware(deps.JWTSecret))

	// Trabajadores
	protected.Post("/register-trabajador", workerHandler.Register)

	// Categorías
	categories := protected.Group("/categoria")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/registrar-categoria", categoryHandler.Create)
	categories.Get("/obtener-categoria", categoryHandler.List)
	categories.Get("/obtener-categoria/:id", categoryHandler.GetByID)
	categories.Put("/actualizar-categoria/:id", categoryHandler.Update)
	categories.Delete("/eliminar-categoria/:id", categoryHandler.Delete)

	// Productos
	products := protected.Group("/producto")
	productHandler := NewProductHandler(deps.ProductUC, deps.ImportUC)
	products.Post("/cargar-productos", productHandler.Import)
	products.Post("/crear-producto", productHandler.Create)
	products.Get("/obtener-productos", productHandler.List)
	products.Get("/obtener-detalle-producto/:id", productHandler.GetDetail)
	products.Put("/editar-producto/:id", productHandler.Update)
	products.Get("/reporte-productos", productHandler.Report)
}

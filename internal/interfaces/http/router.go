package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clasificador/internal/application/auth"
	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TableUC          *usecase.TableUseCase
	RecordUC         *usecase.RecordUseCase
	ClassificationUC *usecase.ClassificationUseCase
	ProductUC        *usecase.ProductUseCase
	ExportUC         *usecase.ExportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Las consultas son públicas; las escrituras
// requieren token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	tableHandler := NewTableHandler(deps.TableUC, deps.RecordUC, deps.ExportUC)
	classHandler := NewClassificationHandler(deps.ClassificationUC, deps.ProductUC, deps.ExportUC)
	productHandler := NewProductHandler(deps.ProductUC)

	admin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin)}
	withAdmin := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, admin...), h)
	}

	// Tablas
	tables := api.Group("/tables")
	tables.Get("/", tableHandler.Tables)
	tables.Get("/:table", tableHandler.List)
	tables.Get("/:table/export.csv", tableHandler.ExportCSV)
	tables.Get("/:table/report.pdf", tableHandler.Report)
	tables.Post("/:table/records", withAdmin(tableHandler.AddRecord)...)

	// Jerarquía de clases
	classes := api.Group("/classifications")
	classes.Get("/tree.xml", classHandler.Tree)
	classes.Get("/:id/children", classHandler.Children)
	classes.Get("/:id/products", classHandler.Products)
	classes.Put("/:id/parent", withAdmin(classHandler.ChangeParent)...)

	// Productos
	api.Put("/products/:id/class", withAdmin(productHandler.ChangeClass)...)
}

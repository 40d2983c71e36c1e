package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/destinity-erp/internal/application/auth"
	"github.com/jhoicas/destinity-erp/internal/application/usecase"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	AuthUC    *auth.AuthUseCase

	JWTSecret string
	// AuthRequired protege /api/users, /api/products y /api/sales con Bearer Token.
	AuthRequired bool

	DB      Pinger
	Metrics *Metrics
	Logger  *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	errs := NewErrorMapper(deps.Logger, deps.Metrics)

	app.Get("/health", HealthHandler(deps.DB))
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Auth: login público, /me siempre protegido
	authHandler := NewAuthHandler(deps.AuthUC, errs)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	guard := func(c *fiber.Ctx) error { return c.Next() }
	if deps.AuthRequired {
		guard = AuthMiddleware(deps.JWTSecret)
	}

	users := api.Group("/users", guard)
	userHandler := NewUserHandler(deps.UserUC, errs)
	users.Post("/employees", userHandler.CreateEmployee)
	users.Post("/providers", userHandler.CreateProvider)
	users.Get("/all", userHandler.List)
	users.Get("/email", userHandler.GetByEmail)
	users.Get("/status", userHandler.ListByStatus)
	users.Get("/department", userHandler.ListByDepartment)
	users.Get("/service", userHandler.ListByService)
	users.Get("/search", userHandler.Search)
	users.Get("/", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	products := api.Group("/products", guard)
	productHandler := NewProductHandler(deps.ProductUC, errs)
	products.Post("/", productHandler.Create)
	products.Get("/all", productHandler.List)
	products.Get("/category", productHandler.ListByCategory)
	products.Get("/search", productHandler.Search)
	products.Get("/", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales", guard)
	saleHandler := NewSaleHandler(deps.SaleUC, errs)
	sales.Post("/", saleHandler.Create)
	sales.Get("/all", saleHandler.List)
	sales.Get("/status", saleHandler.ListByStatus)
	sales.Get("/search", saleHandler.Search)
	sales.Get("/:id/receipt", saleHandler.Receipt)
	sales.Get("/", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
}

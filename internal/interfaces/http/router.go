package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     auth.SessionStore
	AuthUC       *auth.AuthUseCase
	RoleUC       *usecase.RoleUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	OrderUC      *usecase.OrderUseCase
	FAQUC        *usecase.FAQUseCase
	UnansweredUC *usecase.UnansweredUseCase
}

// Router registra las rutas de la API. Toda ruta de recurso pasa por el
// pipeline token -> sesión -> matriz de permisos antes de llegar al handler.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/user/login", authHandler.UserLogin)
	api.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren sesión activa)
	protected := api.Group("/", AuthMiddleware(deps.Sessions))

	roles := protected.Group("/roles", RequireResource(auth.ResourceRoles))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	users := protected.Group("/users", RequireResource(auth.ResourceUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	products := protected.Group("/products", RequireResource(auth.ResourceProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	orders := protected.Group("/orders", RequireResource(auth.ResourceOrders))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	faq := protected.Group("/faq", RequireResource(auth.ResourceFAQ))
	faqHandler := NewFAQHandler(deps.FAQUC)
	faq.Get("/", faqHandler.List)
	faq.Post("/", faqHandler.Create)
	faq.Put("/:id", faqHandler.Update)
	faq.Delete("/:id", faqHandler.Delete)

	unanswered := protected.Group("/unanswered", RequireResource(auth.ResourceUnanswered))
	unansweredHandler := NewUnansweredHandler(deps.UnansweredUC)
	unanswered.Get("/", unansweredHandler.List)
	unanswered.Post("/", unansweredHandler.Create)
	unanswered.Put("/:id", unansweredHandler.Update)
	unanswered.Delete("/:id", unansweredHandler.Delete)
}

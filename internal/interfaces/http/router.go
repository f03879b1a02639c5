package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/projecost-api/internal/application/auth"
	"github.com/jhoicas/projecost-api/internal/application/quoting"
	"github.com/jhoicas/projecost-api/internal/application/usecase"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CountryUC   *usecase.CountryUseCase
	ServiceUC   *usecase.ServiceUseCase
	CreateQuote *quoting.CreateQuoteUseCase
	QuoteUC     *quoting.QuoteUseCase
	QuotePDF    *quoting.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	authOptional := OptionalAuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	// Sin admin: la política de creación exige un proveedor como dueño.
	providerOnly := RequireRole(entity.RoleFreelancer, entity.RoleAgency)

	// Auth (público, salvo el perfil)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Countries: lectura pública; mutaciones solo admin
	countries := api.Group("/countries")
	countryHandler := NewCountryHandler(deps.CountryUC)
	countries.Get("/", countryHandler.List)
	countries.Get("/:id", countryHandler.GetByID)
	countries.Post("/", authRequired, adminOnly, countryHandler.Create)
	countries.Put("/:id", authRequired, adminOnly, countryHandler.Update)
	countries.Delete("/:id", authRequired, adminOnly, countryHandler.Delete)

	// Services: catálogo público; mutaciones para proveedores
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Get("/user/me", authRequired, serviceHandler.ListMine)
	services.Get("/:id", serviceHandler.GetByID)
	services.Post("/", authRequired, providerOnly, serviceHandler.Create)
	services.Put("/:id", authRequired, serviceHandler.Update)
	services.Delete("/:id", authRequired, serviceHandler.Delete)

	// Quotes: creación abierta a anónimos; el resto con token
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.CreateQuote, deps.QuoteUC, deps.QuotePDF)
	quotes.Post("/", authOptional, quoteHandler.Create)
	quotes.Get("/", authRequired, quoteHandler.List)
	quotes.Get("/:id", authRequired, quoteHandler.GetByID)
	quotes.Get("/:id/pdf", authRequired, quoteHandler.DownloadPDF)
	quotes.Patch("/:id/status", authRequired, quoteHandler.UpdateStatus)
	quotes.Delete("/:id", authRequired, quoteHandler.Delete)
}

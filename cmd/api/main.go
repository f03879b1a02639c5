package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/projecost-api/internal/application/auth"
	"github.com/jhoicas/projecost-api/internal/application/quoting"
	"github.com/jhoicas/projecost-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/projecost-api/internal/infrastructure/pdf"
	"github.com/jhoicas/projecost-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/projecost-api/internal/interfaces/http"
	"github.com/jhoicas/projecost-api/pkg/config"
	"github.com/jhoicas/projecost-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	countryRepo := postgres.NewCountryRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err := authUC.EnsureAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del usuario admin")
	}
	countryUC := usecase.NewCountryUseCase(countryRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	createQuoteUC := quoting.NewCreateQuoteUseCase(serviceRepo, countryRepo, quoteRepo, nil)
	quoteUC := quoting.NewQuoteUseCase(quoteRepo, nil)

	// PDF: representación imprimible de la cotización
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	quotePDFUC := quoting.NewPDFUseCase(quoteRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Projecost API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CountryUC:   countryUC,
		ServiceUC:   serviceUC,
		CreateQuote: createQuoteUC,
		QuoteUC:     quoteUC,
		QuotePDF:    quotePDFUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

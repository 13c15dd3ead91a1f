package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/rekini-api/internal/application/billing"
	"github.com/jhoicas/rekini-api/internal/infrastructure/chrome"
	infrapdf "github.com/jhoicas/rekini-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/rekini-api/internal/interfaces/http"
	"github.com/jhoicas/rekini-api/pkg/config"
	"github.com/jhoicas/rekini-api/pkg/logger"
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
		Str("pdf_engine", cfg.PDF.Engine).
		Msg("iniciando aplicación")

	// Estrategia de render elegida por despliegue, no por código.
	var generator billing.InvoicePDFGenerator
	switch cfg.PDF.Engine {
	case config.EngineMaroto:
		generator = infrapdf.NewMarotoPDFGenerator()
	default:
		var provider chrome.EngineProvider
		if cfg.PDF.ChromeManaged {
			// Entorno restringido: binario descargado y cacheado por el launcher.
			provider = &chrome.ManagedProvider{NoSandbox: cfg.PDF.ChromeNoSandbox}
		} else {
			provider = &chrome.LocalProvider{
				Path:      cfg.PDF.ChromePath,
				NoSandbox: cfg.PDF.ChromeNoSandbox,
			}
		}
		generator = chrome.NewPDFGenerator(provider,
			chrome.WithTimeout(time.Duration(cfg.PDF.TimeoutSeconds)*time.Second),
		)
	}

	builder := billing.NewBuilder(time.Now, rand.IntN)
	renderUC := billing.NewRenderUseCase(builder, generator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // un render de Chromium puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rēķini API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Render: renderUC,
		Log:    log,
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

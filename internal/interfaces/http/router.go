package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rekini-api/internal/application/billing"
	"github.com/jhoicas/rekini-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Render *billing.RenderUseCase
	Log    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))

	api := app.Group("/api")

	// Rēķini (público: el formulario no tiene identidad)
	rekini := api.Group("/rekini")
	invoiceHandler := NewInvoiceHandler(deps.Render, deps.Log)
	rekini.Post("/pdf", invoiceHandler.Generate)
}

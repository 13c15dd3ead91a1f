package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rekini-api/internal/application/billing"
	"github.com/jhoicas/rekini-api/internal/application/dto"
	"github.com/jhoicas/rekini-api/internal/domain"
	"github.com/jhoicas/rekini-api/pkg/logger"
)

// InvoiceHandler maneja la generación del rēķins en PDF.
type InvoiceHandler struct {
	uc  *billing.RenderUseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.RenderUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// Generate construye y renderiza el rēķins, y lo devuelve como descarga.
// POST /api/rekini/pdf
//
// Éxito: cuerpo binario application/pdf con filename sugerido "rekins.pdf".
// Fallo: JSON {error, details}; 400 entrada inválida, 503 motor no
// disponible, 500 fallo de render u otro. Sin reintentos.
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "cuerpo de la petición inválido",
			Details: err.Error(),
		})
	}

	pdfBytes, filename, err := h.uc.GenerateInvoicePDF(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// fail convierte el error de dominio en la respuesta estructurada.
// El detalle diagnóstico se registra completo para el operador; al
// cliente solo viajan mensaje y detalle.
func (h *InvoiceHandler) fail(c *fiber.Ctx, err error) error {
	reqLog := h.log.With().Str("request_id", GetRequestID(c)).Logger()

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		reqLog.Warn().Err(err).Msg("petición de rēķins rechazada")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "datos de entrada inválidos",
			Details: err.Error(),
		})
	case errors.Is(err, domain.ErrEngineUnavailable):
		reqLog.Error().Err(err).Msg("motor de renderizado no disponible")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error:   "generación del PDF fallida",
			Details: err.Error(),
		})
	case errors.Is(err, domain.ErrRenderFailed):
		reqLog.Error().Err(err).Msg("renderizado del rēķins fallido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "generación del PDF fallida",
			Details: err.Error(),
		})
	default:
		reqLog.Error().Err(err).Msg("error inesperado generando el rēķins")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "generación del PDF fallida",
			Details: err.Error(),
		})
	}
}

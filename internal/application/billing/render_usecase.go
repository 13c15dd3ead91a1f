package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/rekini-api/internal/application/dto"
)

// DownloadFilename nombre sugerido del adjunto en la descarga.
const DownloadFilename = "rekins.pdf"

// RenderUseCase orquesta la generación del rēķins: construye el modelo a
// partir de la petición y lo entrega al generador de PDF configurado.
// Sin reintentos: cualquier fallo sube inmediatamente al handler.
type RenderUseCase struct {
	builder   *Builder
	generator InvoicePDFGenerator
}

// NewRenderUseCase construye el caso de uso inyectando sus dependencias.
func NewRenderUseCase(builder *Builder, generator InvoicePDFGenerator) *RenderUseCase {
	return &RenderUseCase{builder: builder, generator: generator}
}

// GenerateInvoicePDF valida y construye el rēķins, lo renderiza y devuelve
// los bytes del PDF junto con el nombre de archivo sugerido.
//
// Retorna:
//   - (pdfBytes, "rekins.pdf", nil)   si todo sale bien.
//   - domain.ErrInvalidInput          si la petición no pasa la validación.
//   - domain.ErrEngineUnavailable     si el motor de render no pudo adquirirse.
//   - domain.ErrRenderFailed          si el render arrancó pero no terminó.
func (uc *RenderUseCase) GenerateInvoicePDF(
	ctx context.Context,
	req dto.GenerateInvoiceRequest,
) (pdfBytes []byte, filename string, err error) {
	invoice, err := uc.builder.Build(req)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, invoice)
	if err != nil {
		return nil, "", fmt.Errorf("rēķins %s: %w", invoice.Number, err)
	}

	return pdfBytes, DownloadFilename, nil
}

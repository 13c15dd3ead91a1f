package billing

import (
	"context"

	"github.com/jhoicas/rekini-api/internal/domain/entity"
)

// InvoicePDFGenerator convierte un rēķins ya construido en los bytes del PDF.
// Hay dos implementaciones intercambiables (misma información, distinta
// maquetación): chrome.PDFGenerator (HTML → Chromium headless) y
// pdf.MarotoPDFGenerator (componentes declarativos). La elección se hace
// por configuración de despliegue, no dentro de la lógica de render.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}

// Package chrome implementa billing.InvoicePDFGenerator renderizando la
// página HTML del rēķins con un Chromium headless (CDP vía chromedp).
//
// El motor se adquiere por petición a través de un EngineProvider y se
// libera en toda salida; no hay estado compartido entre peticiones.
package chrome

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jhoicas/rekini-api/internal/domain"
	"github.com/jhoicas/rekini-api/internal/domain/entity"
)

// Dimensiones A4 en pulgadas y margen de impresión (~20px a 96dpi),
// los mismos valores con los que imprime el diseño original.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.21
)

// PDFGenerator estrategia HTML → PDF del rēķins.
type PDFGenerator struct {
	provider EngineProvider
	timeout  time.Duration
}

// Option configura un PDFGenerator.
type Option func(*PDFGenerator)

// WithTimeout acota la duración de un render (por defecto 30s).
// Cero o negativo desactiva el límite.
func WithTimeout(d time.Duration) Option {
	return func(g *PDFGenerator) { g.timeout = d }
}

// NewPDFGenerator construye el generador sobre el proveedor de motor dado.
func NewPDFGenerator(provider EngineProvider, opts ...Option) *PDFGenerator {
	g := &PDFGenerator{
		provider: provider,
		timeout:  30 * time.Second,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// GenerateInvoicePDF renderiza el rēķins a una página A4 y devuelve los bytes.
//
// Taxonomía de fallos:
//   - domain.ErrEngineUnavailable si el navegador no pudo adquirirse.
//   - domain.ErrRenderFailed si la plantilla, la navegación o PrintToPDF
//     fallan una vez el motor ya arrancó (incluye timeout).
func (g *PDFGenerator) GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error) {
	html, err := renderHTML(invoice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	engine, err := g.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	buf, err := g.printToPDF(engine, html)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return buf, nil
}

// printToPDF navega a la página vía archivo temporal (file://) e imprime
// con PrintToPDF. Una pestaña nueva por invocación.
func (g *PDFGenerator) printToPDF(engine *Engine, html string) ([]byte, error) {
	f, err := os.CreateTemp("", "rekins-*.html")
	if err != nil {
		return nil, fmt.Errorf("archivo temporal: %v", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, fmt.Errorf("escribir archivo temporal: %v", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("cerrar archivo temporal: %v", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("resolver ruta: %v", err)
	}

	tabCtx, tabCancel := chromedp.NewContext(engine.Context())
	defer tabCancel()

	var buf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			buf, _, printErr = page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginRight(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithPrintBackground(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

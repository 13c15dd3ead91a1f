// Package pdf implementa la estrategia declarativa del rēķins con Maroto v2:
// la misma información que la estrategia HTML, declarada como filas y
// columnas en vez de maquetada por un navegador.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: MrBiskvits + contacto  │  RĒĶINS + Nr/Datums/Termiņš│
//	│  ─────────────────────────────────────────────────────────  │
//	│  SŪTĪTĀJS (emisor fijo)  │  SAŅĒMĒJS (datos del formulario)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nosaukums (60%) | Daudzums (20%) | Cena € (20%)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Starpsumma / PVN (21%) / KOPĀ                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Paldies + Konts / Banka / Maksājuma mērķis          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rekini-api/internal/domain"
	"github.com/jhoicas/rekini-api/internal/domain/entity"
	"github.com/jhoicas/rekini-api/internal/domain/pricing"
)

// ── Paleta de colores (la del diseño original: #667eea / grises) ─────────────

var (
	colorPrimary = &props.Color{Red: 102, Green: 126, Blue: 234}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorInk     = &props.Color{Red: 26, Green: 32, Blue: 44}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
// Sin estado: no hay motor externo que adquirir, el layout se evalúa en proceso.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF del rēķins y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rēķins "+invoice.Number, true).
		WithAuthor(invoice.Sender.Name, true).
		Build()

	m := maroto.New(cfg)

	// Cabecera
	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Partes: emisor fijo + receptor del formulario
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de servicios
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: maroto: %v", domain.ErrRenderFailed, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: identidad del emisor (izq) y RĒĶINS + Nr/Datums/Termiņš (der).
func headerRow(invoice *entity.Invoice) core.Row {
	s := invoice.Sender
	return row.New(26).Add(
		col.New(7).Add(
			text.New(s.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Tagline, props.Text{Size: 9, Top: 8, Color: colorGray}),
			text.New(fmt.Sprintf("%s   |   %s", s.Address, s.Phone), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%s   |   %s", s.Email, s.Website), props.Text{
				Size: 8, Top: 19, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RĒĶINS", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Rēķina Nr.: "+invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 10,
			}),
			text.New("Datums: "+invoice.IssueDate, props.Text{
				Size: 8, Align: align.Right, Top: 16, Color: colorGray,
			}),
			text.New("Termiņš: "+invoice.PaymentTerm, props.Text{
				Size: 8, Align: align.Right, Top: 21, Color: colorGray,
			}),
		),
	)
}

// partiesRow: bloque de dos columnas Sūtītājs / Saņēmējs.
func partiesRow(invoice *entity.Invoice) core.Row {
	s, r := invoice.Sender, invoice.Recipient
	return row.New(26).Add(
		col.New(6).Add(
			text.New("SŪTĪTĀJS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Uzņēmums: "+s.Name, props.Text{Size: 8, Top: 7}),
			text.New("Adrese: "+s.Address, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Reģ. Nr.: "+s.RegNumber, props.Text{Size: 8, Top: 17, Color: colorGray}),
			text.New("PVN Nr.: "+s.VATNumber, props.Text{Size: 8, Top: 22, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("SAŅĒMĒJS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Nosaukums: "+r.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 7}),
			text.New("Reģ. Nr.: "+r.RegNumber, props.Text{Size: 8, Top: 13, Color: colorGray}),
			text.New("Adrese: "+r.Address, props.Text{Size: 8, Top: 18, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla 60/20/20 (7+2+3 del grid de 12).
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Pakalpojuma nosaukums", 7, align.Left),
		h("Daudzums", 2, align.Center),
		h("Cena (€)", 3, align.Right),
	)
}

// tableItemRows: una fila por línea, en el orden de envío; el importe es
// precio unitario × cantidad a 2 decimales.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(7).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				money(it.Total()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: Starpsumma / PVN (21%) / KOPĀ, con el gran total destacado.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(
			label("Starpsumma:"),
			text.New(fmt.Sprintf("PVN (%d%%):", pricing.TaxRatePercent), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6,
			}),
			text.New("KOPĀ:", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorInk, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(money(invoice.Subtotal)),
			text.New(money(invoice.TaxAmount), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 6,
			}),
			text.New(money(invoice.GrandTotal), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorInk, Right: 1, Top: 14,
			}),
		),
	)
}

// footerRows: agradecimiento fijo + datos bancarios con la referencia de pago.
func footerRows(invoice *entity.Invoice) []core.Row {
	s := invoice.Sender
	return []core.Row{
		row.New(10).Add(
			col.New(6).Add(
				text.New(s.Name+" - "+s.Tagline, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 1,
				}),
				text.New("Paldies par jūsu uzticību!", props.Text{
					Style: fontstyle.Italic, Size: 8, Top: 6, Color: colorGray,
				}),
			),
			col.New(6).Add(
				text.New("MAKSĀJUMA INFORMĀCIJA", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New("Konts: "+s.BankAccount+"   |   Banka: "+s.BankName, props.Text{
					Size: 8, Top: 6, Color: colorGray,
				}),
			),
		),
		row.New(6).Add(col.New(12).Add(
			text.New("Maksājuma mērķis: Rēķins #"+invoice.Number, props.Text{
				Size: 8, Top: 1, Color: colorGray, Align: align.Right,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea un importe en euros con 2 decimales ("€1234.56").
// El redondeo ocurre solo aquí, en presentación.
func money(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

// Package pricing calcula los totales del rēķins: suma de líneas,
// PVN (IVA letón, tipo fijo del 21%) y total a pagar.
//
// Toda la aritmética se hace con decimal.Decimal exacto; el redondeo a
// 2 decimales ocurre únicamente al formatear para presentación. Así
// subtotal, impuesto y total nunca pueden mostrarse inconsistentes
// (total = subtotal + impuesto se cumple antes y después de redondear).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rekini-api/internal/domain/entity"
)

// TaxRatePercent tipo de PVN que se imprime en la etiqueta del documento.
const TaxRatePercent = 21

// taxRate = 0.21 exacto (21 × 10⁻²).
var taxRate = decimal.New(TaxRatePercent, -2)

// Totals resultado del cálculo: subtotal, impuesto y total.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute calcula los totales de una secuencia de líneas.
// Determinista, sin efectos; el orden de las líneas no altera el resultado.
func Compute(items []entity.LineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total())
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

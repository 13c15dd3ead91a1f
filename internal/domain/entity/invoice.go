package entity

import "github.com/shopspring/decimal"

// PaymentTerm plazo de pago fijo que se imprime en la cabecera del rēķins.
const PaymentTerm = "15 dienas"

// LineItem una línea facturada: servicio seleccionado en el formulario.
// Inmutable una vez recibido; vive solo durante la petición.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total importe de la línea: precio unitario × cantidad.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Recipient datos del receptor (Saņēmējs) tomados del formulario.
// La dirección es un placeholder fijo, igual que en el documento original.
type Recipient struct {
	Name      string
	RegNumber string
	Address   string
}

// Invoice representa el rēķins ya construido: número, fecha, partes,
// líneas y totales calculados. No se persiste; existe solo para renderizarse.
type Invoice struct {
	Number      string // "INV-<yyyymmdd>-<0..999>"
	IssueDate   string // fecha formateada en convención letona (dd.mm.yyyy.)
	PaymentTerm string
	Sender      Sender
	Recipient   Recipient
	Items       []LineItem
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	GrandTotal  decimal.Decimal
}

package dto

import "github.com/shopspring/decimal"

// GenerateInvoiceRequest body para POST /api/rekini/pdf.
// Es el contrato que envía el formulario: receptor + servicios seleccionados.
type GenerateInvoiceRequest struct {
	RecipientName      string           `json:"recipientName"`
	RegistrationNumber string           `json:"registrationNumber"`
	SelectedOptions    []SelectedOption `json:"selectedOptions"`
}

// SelectedOption servicio marcado en el formulario (nombre, precio unitario, cantidad).
type SelectedOption struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ErrorResponse cuerpo de error HTTP: mensaje legible + detalle diagnóstico.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/rekini-api/internal/application/dto"
	"github.com/jhoicas/rekini-api/internal/domain"
	"github.com/jhoicas/rekini-api/internal/domain/entity"
	"github.com/jhoicas/rekini-api/internal/domain/pricing"
)

// issueDateLayout fecha del documento en convención letona (dd.mm.yyyy.),
// como la produce lv-LV en el navegador.
const issueDateLayout = "02.01.2006."

// recipientAddress placeholder fijo del receptor; el formulario no pide dirección.
const recipientAddress = "Latvija"

// Builder construye el Invoice a partir de la petición del formulario.
// El reloj y la fuente aleatoria se inyectan para poder fijar número y
// fecha en los tests; fuera de eso es puro respecto a sus entradas.
type Builder struct {
	now     func() time.Time
	randInt func(n int) int // entero uniforme en [0, n)
}

// NewBuilder construye el builder con el reloj y el aleatorio dados.
func NewBuilder(now func() time.Time, randInt func(n int) int) *Builder {
	return &Builder{now: now, randInt: randInt}
}

// Build valida la petición y produce el rēķins con número, fecha y totales.
//
// Política de validación: rechazar (no recortar). Nombre y número de
// registro del receptor no pueden ir en blanco; cada línea necesita
// nombre, precio ≥ 0 y cantidad ≥ 1. Una lista de líneas vacía sí es
// válida: el documento se renderiza con la tabla sin filas.
func (b *Builder) Build(req dto.GenerateInvoiceRequest) (*entity.Invoice, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	items := make([]entity.LineItem, 0, len(req.SelectedOptions))
	for _, opt := range req.SelectedOptions {
		items = append(items, entity.LineItem{
			Name:      opt.Name,
			UnitPrice: opt.Price,
			Quantity:  opt.Quantity,
		})
	}

	totals := pricing.Compute(items)
	now := b.now()

	return &entity.Invoice{
		Number:      b.invoiceNumber(now),
		IssueDate:   now.Format(issueDateLayout),
		PaymentTerm: entity.PaymentTerm,
		Sender:      entity.DefaultSender(),
		Recipient: entity.Recipient{
			Name:      req.RecipientName,
			RegNumber: req.RegistrationNumber,
			Address:   recipientAddress,
		},
		Items:      items,
		Subtotal:   totals.Subtotal,
		TaxAmount:  totals.Tax,
		GrandTotal: totals.Total,
	}, nil
}

// invoiceNumber genera "INV-<yyyymmdd>-<sufijo>". El sufijo 0..999 viene
// de una fuente no criptográfica y NO es único entre peticiones
// concurrentes: es un artefacto de presentación, no una clave.
func (b *Builder) invoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%d", now.Format("20060102"), b.randInt(1000))
}

func validate(req dto.GenerateInvoiceRequest) error {
	if strings.TrimSpace(req.RecipientName) == "" {
		return fmt.Errorf("%w: recipientName requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.RegistrationNumber) == "" {
		return fmt.Errorf("%w: registrationNumber requerido", domain.ErrInvalidInput)
	}
	for i, opt := range req.SelectedOptions {
		if strings.TrimSpace(opt.Name) == "" {
			return fmt.Errorf("%w: selectedOptions[%d].name requerido", domain.ErrInvalidInput, i)
		}
		if opt.Price.IsNegative() {
			return fmt.Errorf("%w: selectedOptions[%d].price no puede ser negativo", domain.ErrInvalidInput, i)
		}
		if opt.Quantity < 1 {
			return fmt.Errorf("%w: selectedOptions[%d].quantity debe ser al menos 1", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

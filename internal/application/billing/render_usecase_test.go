package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rekini-api/internal/application/billing"
	"github.com/jhoicas/rekini-api/internal/domain"
	"github.com/jhoicas/rekini-api/internal/domain/entity"
)

// fakeGenerator implementación del puerto para los tests: captura el
// invoice recibido y devuelve bytes o error fijados de antemano.
type fakeGenerator struct {
	got   *entity.Invoice
	bytes []byte
	err   error
}

func (f *fakeGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	f.got = inv
	return f.bytes, f.err
}

func newUseCase(gen billing.InvoicePDFGenerator) *billing.RenderUseCase {
	builder := billing.NewBuilder(
		func() time.Time { return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC) },
		func(int) int { return 5 },
	)
	return billing.NewRenderUseCase(builder, gen)
}

// Caso 1: flujo feliz — bytes del generador + nombre fijo "rekins.pdf".
func TestGenerateInvoicePDF_Exitoso(t *testing.T) {
	gen := &fakeGenerator{bytes: []byte("%PDF-1.7 fake")}
	uc := newUseCase(gen)

	pdf, filename, err := uc.GenerateInvoicePDF(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7 fake"), pdf)
	assert.Equal(t, "rekins.pdf", filename)
	require.NotNil(t, gen.got, "el generador debe recibir el invoice construido")
	assert.Equal(t, "INV-20250601-5", gen.got.Number)
}

// Caso 2: petición inválida → el generador nunca se invoca.
func TestGenerateInvoicePDF_ValidacionAntesDeRenderizar(t *testing.T) {
	gen := &fakeGenerator{bytes: []byte("nunca")}
	uc := newUseCase(gen)

	req := validRequest()
	req.RecipientName = ""

	_, _, err := uc.GenerateInvoicePDF(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, gen.got, "no debe renderizarse nada con entrada inválida")
}

// Caso 3: motor no disponible → el error sube sin bytes parciales.
func TestGenerateInvoicePDF_MotorNoDisponible(t *testing.T) {
	gen := &fakeGenerator{err: domain.ErrEngineUnavailable}
	uc := newUseCase(gen)

	pdf, _, err := uc.GenerateInvoicePDF(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.Nil(t, pdf, "nunca se devuelve un PDF parcial junto a un error")
}

// Caso 4: fallo de render con causa encadenada → se conserva la cadena.
func TestGenerateInvoicePDF_FalloDeRender(t *testing.T) {
	cause := errors.New("timeout interno")
	gen := &fakeGenerator{err: errors.Join(domain.ErrRenderFailed, cause)}
	uc := newUseCase(gen)

	_, _, err := uc.GenerateInvoicePDF(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrRenderFailed)
	assert.ErrorIs(t, err, cause, "el detalle diagnóstico debe conservarse")
}

package chrome

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rekini-api/internal/domain"
)

// failingProvider simula un entorno donde el navegador no puede arrancar.
type failingProvider struct{}

func (failingProvider) Acquire(context.Context) (*Engine, error) {
	return nil, fmt.Errorf("%w: arranque de chromium: %v",
		domain.ErrEngineUnavailable, errors.New("exec: chromium not found"))
}

// Motor no disponible → error distinguible, nunca bytes parciales.
func TestGenerateInvoicePDF_MotorNoDisponible(t *testing.T) {
	g := NewPDFGenerator(failingProvider{})

	pdf, err := g.GenerateInvoicePDF(context.Background(), sampleInvoice(nil))

	require.ErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.NotErrorIs(t, err, domain.ErrRenderFailed,
		"fallo de adquisición y fallo de render son errores distintos")
	assert.Nil(t, pdf)
}

// WithTimeout cero deja el render sin límite; un valor positivo lo acota.
func TestNewPDFGenerator_Opciones(t *testing.T) {
	g := NewPDFGenerator(failingProvider{}, WithTimeout(0))
	assert.Zero(t, g.timeout)

	g = NewPDFGenerator(failingProvider{})
	assert.Positive(t, g.timeout, "el timeout por defecto debe estar acotado")
}

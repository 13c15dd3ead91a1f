package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rekini-api/internal/application/billing"
	"github.com/jhoicas/rekini-api/internal/application/dto"
	"github.com/jhoicas/rekini-api/internal/domain"
	"github.com/jhoicas/rekini-api/internal/domain/entity"
	apphttp "github.com/jhoicas/rekini-api/internal/interfaces/http"
	"github.com/jhoicas/rekini-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubGenerator generador de PDF controlado desde el test.
type stubGenerator struct {
	bytes []byte
	err   error
}

func (s stubGenerator) GenerateInvoicePDF(context.Context, *entity.Invoice) ([]byte, error) {
	return s.bytes, s.err
}

// buildTestApp construye la app Fiber con el pipeline real (builder
// determinista + caso de uso) y el generador indicado.
func buildTestApp(gen billing.InvoicePDFGenerator) *fiber.App {
	builder := billing.NewBuilder(
		func() time.Time { return time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC) },
		func(int) int { return 42 },
	)
	uc := billing.NewRenderUseCase(builder, gen)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Render: uc,
		Log:    logger.New(logger.Config{Env: "test", Level: "error"}),
	})
	return app
}

const validBody = `{
  "recipientName": "SIA Jāņa Dārzs",
  "registrationNumber": "40001234567",
  "selectedOptions": [
    {"name": "Mājas lapas izstrāde", "price": 20.00, "quantity": 1},
    {"name": "SEO optimizācija", "price": 30.00, "quantity": 2}
  ]
}`

func doPost(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/rekini/pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/rekini/pdf
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: éxito → binario application/pdf con descarga sugerida rekins.pdf.
func TestGenerate_Exitoso(t *testing.T) {
	app := buildTestApp(stubGenerator{bytes: []byte("%PDF-1.7 contenido")})

	resp := doPost(t, app, validBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="rekins.pdf"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 contenido"), body, "el binario llega sin alterar")
}

// Caso 2: el middleware de correlación añade X-Request-Id a la respuesta.
func TestGenerate_RequestID(t *testing.T) {
	app := buildTestApp(stubGenerator{bytes: []byte("%PDF")})

	resp := doPost(t, app, validBody)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

// Caso 3: JSON malformado → 400 con {error, details}.
func TestGenerate_CuerpoMalformado(t *testing.T) {
	app := buildTestApp(stubGenerator{bytes: []byte("%PDF")})

	resp := doPost(t, app, `{"recipientName": `)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "cuerpo de la petición inválido", e.Error)
	assert.NotEmpty(t, e.Details)
}

// Caso 4: validación de dominio → 400 y el generador no produce nada.
func TestGenerate_EntradaInvalida(t *testing.T) {
	app := buildTestApp(stubGenerator{bytes: []byte("%PDF")})

	resp := doPost(t, app, `{"recipientName": "", "registrationNumber": "123", "selectedOptions": []}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "datos de entrada inválidos", e.Error)
	assert.Contains(t, e.Details, "recipientName")
}

// Caso 5: motor no disponible simulado → 503 JSON, nunca binario parcial.
func TestGenerate_MotorNoDisponible(t *testing.T) {
	app := buildTestApp(stubGenerator{err: domain.ErrEngineUnavailable})

	resp := doPost(t, app, validBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json",
		"el fallo responde JSON estructurado, no un PDF corrupto")

	e := decodeError(t, resp)
	assert.Equal(t, "generación del PDF fallida", e.Error)
	assert.NotEmpty(t, e.Details)
}

// Caso 6: fallo de render → 500 con el detalle diagnóstico.
func TestGenerate_RenderFallido(t *testing.T) {
	app := buildTestApp(stubGenerator{err: domain.ErrRenderFailed})

	resp := doPost(t, app, validBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "generación del PDF fallida", e.Error)
}

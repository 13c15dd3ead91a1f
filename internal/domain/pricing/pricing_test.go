package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rekini-api/internal/domain/entity"
	"github.com/jhoicas/rekini-api/internal/domain/pricing"
)

func item(price string, qty int) entity.LineItem {
	return entity.LineItem{
		Name:      "Pakalpojums",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

// Caso 1: ejemplo trabajado — 20.00×1 + 30.00×2 = 80.00; PVN 16.80; total 96.80.
func TestCompute_EjemploBasico(t *testing.T) {
	got := pricing.Compute([]entity.LineItem{
		item("20.00", 1),
		item("30.00", 2),
	})

	assert.Equal(t, "80.00", got.Subtotal.StringFixed(2), "subtotal")
	assert.Equal(t, "16.80", got.Tax.StringFixed(2), "PVN 21%")
	assert.Equal(t, "96.80", got.Total.StringFixed(2), "total")
}

// Caso 2: 17.00×3 = 51.00; PVN 10.71; total 61.71.
func TestCompute_EjemploConCantidad(t *testing.T) {
	got := pricing.Compute([]entity.LineItem{item("17.00", 3)})

	assert.Equal(t, "51.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "10.71", got.Tax.StringFixed(2))
	assert.Equal(t, "61.71", got.Total.StringFixed(2))
}

// Caso 3: lista vacía → todo en cero, sin pánico.
func TestCompute_ListaVacia(t *testing.T) {
	got := pricing.Compute(nil)

	assert.True(t, got.Subtotal.IsZero(), "subtotal debe ser 0.00")
	assert.True(t, got.Tax.IsZero(), "impuesto debe ser 0.00")
	assert.True(t, got.Total.IsZero(), "total debe ser 0.00")
}

// Caso 4: invariantes sobre un abanico de entradas:
// total == subtotal + impuesto e impuesto == subtotal × 0.21, exactos.
func TestCompute_Invariantes(t *testing.T) {
	rate := decimal.RequireFromString("0.21")
	cases := [][]entity.LineItem{
		{item("0.01", 1)},
		{item("0.00", 5)},
		{item("9.99", 7), item("0.50", 2)},
		{item("123.45", 1), item("67.89", 3), item("1000.00", 10)},
		{item("19.99", 99)},
	}

	for _, items := range cases {
		got := pricing.Compute(items)

		require.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax)),
			"total debe ser subtotal+impuesto para %v", items)
		require.True(t, got.Tax.Equal(got.Subtotal.Mul(rate)),
			"impuesto debe ser subtotal×0.21 para %v", items)
	}
}

// Caso 5: el orden de las líneas no altera los totales.
func TestCompute_OrdenIndependiente(t *testing.T) {
	a := []entity.LineItem{item("20.00", 1), item("30.00", 2), item("17.00", 3)}
	b := []entity.LineItem{item("17.00", 3), item("20.00", 1), item("30.00", 2)}

	ta, tb := pricing.Compute(a), pricing.Compute(b)
	assert.True(t, ta.Total.Equal(tb.Total), "los totales no dependen del orden")
	assert.True(t, ta.Subtotal.Equal(tb.Subtotal))
	assert.True(t, ta.Tax.Equal(tb.Tax))
}

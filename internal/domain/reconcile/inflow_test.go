package reconcile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/reconcile"
)

func TestAggregateInflows_CorteExcluyeFacturasAnterioresALaFoto(t *testing.T) {
	cutoff := ts("2024-01-10T00:00:00Z")
	txs := []entity.InboundTransaction{
		// anterior al conteo físico: ya está dentro de la cantidad base
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("40"), EmissionDate: ts("2024-01-09T23:59:00Z")},
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("10"), EmissionDate: ts("2024-01-10T00:00:00Z")},
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("5"), EmissionDate: ts("2024-02-01T08:00:00Z")},
	}

	totals := reconcile.AggregateInflows(txs, cutoff)

	key := entity.ProductKey{ProjectID: 1, Product: "CEMENTO"}
	require.Contains(t, totals, key)
	assert.True(t, dec("15").Equal(totals[key]),
		"solo cuentan las emitidas en o después del corte: 10 + 5")
}

func TestAggregateInflows_SinCorteNoExcluyeNada(t *testing.T) {
	txs := []entity.InboundTransaction{
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("40"), EmissionDate: ts("2019-05-01T00:00:00Z")},
	}
	totals := reconcile.AggregateInflows(txs, time.Time{})
	key := entity.ProductKey{ProjectID: 1, Product: "CEMENTO"}
	assert.True(t, dec("40").Equal(totals[key]),
		"una foto sin fechas implica pasado ilimitado: ninguna factura se excluye")
}

func TestAggregateInflows_FallbackADescripcionYExclusiones(t *testing.T) {
	txs := []entity.InboundTransaction{
		// sin estandarizado: agrupa por descripción cruda
		{ProjectID: 1, Description: "CINTA AISLANTE 3M", Quantity: dec("6"), EmissionDate: ts("2024-01-05T00:00:00Z")},
		// ambos vacíos: fila no agrupable, se excluye entera
		{ProjectID: 1, Quantity: dec("99"), EmissionDate: ts("2024-01-05T00:00:00Z")},
		// sin project_id: no hay llave de cruce
		{StandardizedProduct: "CINTA AISLANTE 3M", Quantity: dec("3"), EmissionDate: ts("2024-01-05T00:00:00Z")},
		// cantidad cero: dato sucio
		{ProjectID: 1, Description: "CINTA AISLANTE 3M", Quantity: dec("0"), EmissionDate: ts("2024-01-05T00:00:00Z")},
	}

	totals := reconcile.AggregateInflows(txs, time.Time{})

	require.Len(t, totals, 1)
	key := entity.ProductKey{ProjectID: 1, Product: "CINTA AISLANTE 3M"}
	assert.True(t, dec("6").Equal(totals[key]))
}

func TestAggregateInflowsDaily_DetalleDelDia(t *testing.T) {
	txs := []entity.InboundTransaction{
		{ProjectID: 1, StandardizedProduct: "TUBO EMT 1/2", Quantity: dec("10"), Unit: "MTR",
			EmissionDate: ts("2024-01-05T08:00:00Z")},
		{ProjectID: 1, StandardizedProduct: "TUBO EMT 1/2", Quantity: dec("4"), Unit: "M",
			ManuallyValidated: true, EmissionDate: ts("2024-01-05T17:45:00Z")},
		{ProjectID: 1, StandardizedProduct: "TUBO EMT 1/2", Quantity: dec("2"), Unit: "M",
			EmissionDate: ts("2024-01-06T09:00:00Z")},
	}

	daily := reconcile.AggregateInflowsDaily(txs, time.Time{}, time.UTC)

	key := entity.ProductKey{ProjectID: 1, Product: "TUBO EMT 1/2"}
	require.Contains(t, daily, key)
	require.Len(t, daily[key], 2, "dos días calendario distintos")

	d5 := daily[key][ts("2024-01-05T00:00:00Z")]
	assert.True(t, dec("14").Equal(d5.Quantity))
	assert.Equal(t, "M", d5.Unit, "la unidad representativa es la de la línea más reciente del día")
	assert.True(t, d5.Validated, "basta una línea validada para marcar el día")
	assert.Equal(t, 2, d5.Count)
	assert.Equal(t, ts("2024-01-05T08:00:00Z"), d5.First)
	assert.Equal(t, ts("2024-01-05T17:45:00Z"), d5.Last)

	d6 := daily[key][ts("2024-01-06T00:00:00Z")]
	assert.Equal(t, 1, d6.Count)
	assert.False(t, d6.Validated)
}

func TestAggregateInflowsDaily_ZonaHorariaDefineElDia(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*60*60)
	// 02:00 UTC del día 6 = 21:00 del día 5 en Bogotá
	txs := []entity.InboundTransaction{
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("1"), EmissionDate: ts("2024-01-06T02:00:00Z")},
	}

	key := entity.ProductKey{ProjectID: 1, Product: "CEMENTO"}

	utcDaily := reconcile.AggregateInflowsDaily(txs, time.Time{}, time.UTC)
	assert.Contains(t, utcDaily[key], ts("2024-01-06T00:00:00Z"))

	bogDaily := reconcile.AggregateInflowsDaily(txs, time.Time{}, bogota)
	assert.Contains(t, bogDaily[key], ts("2024-01-05T00:00:00Z"),
		"en hora local de Bogotá la factura pertenece al día anterior")
}

func TestAggregateOutflowsDaily_DetalleDelDia(t *testing.T) {
	txs := []entity.OutboundTransaction{
		{ProjectID: 2, Product: "CABLE THHN 12", Quantity: dec("100"), Unit: "M", SentAt: ts("2024-02-01T07:00:00Z")},
		{ProjectID: 2, Product: "CABLE THHN 12", Quantity: dec("50"), Unit: "M", SentAt: ts("2024-02-01T16:30:00Z")},
		// cantidad no positiva: excluida
		{ProjectID: 2, Product: "CABLE THHN 12", Quantity: dec("-10"), SentAt: ts("2024-02-01T18:00:00Z")},
		// sin producto: excluida
		{ProjectID: 2, Quantity: dec("33"), SentAt: ts("2024-02-01T18:00:00Z")},
	}

	daily := reconcile.AggregateOutflowsDaily(txs, time.UTC)

	key := entity.ProductKey{ProjectID: 2, Product: "CABLE THHN 12"}
	require.Contains(t, daily, key)
	d := daily[key][ts("2024-02-01T00:00:00Z")]
	assert.True(t, dec("150").Equal(d.Quantity))
	assert.Equal(t, 2, d.Count)
	assert.Equal(t, ts("2024-02-01T07:00:00Z"), d.First)
	assert.Equal(t, ts("2024-02-01T16:30:00Z"), d.Last)
}

package reconcile_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/reconcile"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

// escenarioCemento arma el caso de referencia: foto base de CEMENTO qty 100 al
// 2024-01-01, una compra de 50 a $10 el 2024-01-05 y una salida de 30 el
// 2024-01-06. Neto esperado 120, serie diaria 150 → 120.
func escenarioCemento() ([]entity.SnapshotRecord, []entity.InboundTransaction, []entity.OutboundTransaction) {
	snapshots := []entity.SnapshotRecord{
		{ProjectID: 7, Description: "CEMENTO", Quantity: dec("100"), Unit: "UND", CapturedAt: tsp("2024-01-01T08:00:00Z")},
	}
	inbound := []entity.InboundTransaction{
		{TransactionID: 1, ProjectID: 7, StandardizedProduct: "CEMENTO", Quantity: dec("50"),
			UnitPrice: dec("10"), Unit: "UND", EmissionDate: ts("2024-01-05T14:30:00Z")},
	}
	outbound := []entity.OutboundTransaction{
		{ID: 1, ProjectID: 7, Product: "CEMENTO", Quantity: dec("30"), Unit: "UND", SentAt: ts("2024-01-06T09:00:00Z")},
	}
	return snapshots, inbound, outbound
}

func TestConsolidate_EscenarioCemento(t *testing.T) {
	snapshots, inbound, outbound := escenarioCemento()

	base, cutoff := reconcile.BuildBaseline(snapshots)
	rows := reconcile.Consolidate(
		base,
		reconcile.AggregateInflows(inbound, cutoff),
		reconcile.AggregateOutflows(outbound),
	)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, entity.ProductKey{ProjectID: 7, Product: "CEMENTO"}, row.Key)
	assert.True(t, dec("100").Equal(row.Base))
	assert.True(t, dec("50").Equal(row.Inflow))
	assert.True(t, dec("30").Equal(row.Outflow))
	assert.True(t, dec("120").Equal(row.Net), "neto = 100 + 50 - 30 = 120, fue %s", row.Net)

	prices := reconcile.MedianPrices(inbound)
	assert.True(t, dec("10").Equal(prices["CEMENTO"]), "precio mediano de una sola compra = su precio")
}

func TestDailySeries_EscenarioCemento(t *testing.T) {
	snapshots, inbound, outbound := escenarioCemento()

	base, cutoff := reconcile.BuildBaseline(snapshots)
	rows := reconcile.DailySeries(
		base,
		reconcile.AggregateInflowsDaily(inbound, cutoff, time.UTC),
		reconcile.AggregateOutflowsDaily(outbound, time.UTC),
	)

	require.Len(t, rows, 2, "dos días de actividad: la compra y la salida")

	assert.Equal(t, ts("2024-01-05T00:00:00Z"), rows[0].Day)
	assert.True(t, dec("50").Equal(rows[0].Net))
	assert.True(t, dec("150").Equal(rows[0].Running), "saldo tras la compra: 100 + 50")
	require.NotNil(t, rows[0].Inflow)
	assert.Nil(t, rows[0].Outflow, "el día de la compra no tuvo salidas")

	assert.Equal(t, ts("2024-01-06T00:00:00Z"), rows[1].Day)
	assert.True(t, dec("-30").Equal(rows[1].Net))
	assert.True(t, dec("120").Equal(rows[1].Running), "saldo tras la salida: 150 - 30")
	assert.Nil(t, rows[1].Inflow)
	require.NotNil(t, rows[1].Outflow)
}

// TestConsistenciaEntreModos: para toda llave, el neto consolidado debe
// coincidir con el último saldo acumulado de la serie diaria (más la base en
// llaves sin actividad, que la serie no emite).
func TestConsistenciaEntreModos(t *testing.T) {
	snapshots := []entity.SnapshotRecord{
		{ProjectID: 1, Description: "CEMENTO", Quantity: dec("100"), CapturedAt: tsp("2024-01-01T00:00:00Z")},
		{ProjectID: 1, Description: "ARENA", Quantity: dec("40"), CapturedAt: tsp("2024-01-02T00:00:00Z")},
		{ProjectID: 2, Description: "CEMENTO", Quantity: dec("15"), CapturedAt: tsp("2024-01-03T00:00:00Z")},
	}
	inbound := []entity.InboundTransaction{
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("50"), UnitPrice: dec("10"), EmissionDate: ts("2024-01-05T10:00:00Z")},
		{ProjectID: 1, StandardizedProduct: "CEMENTO", Quantity: dec("25"), UnitPrice: dec("12"), EmissionDate: ts("2024-01-09T10:00:00Z")},
		{ProjectID: 2, StandardizedProduct: "LADRILLO", Quantity: dec("500"), UnitPrice: dec("2"), EmissionDate: ts("2024-01-07T10:00:00Z")},
	}
	outbound := []entity.OutboundTransaction{
		{ProjectID: 1, Product: "CEMENTO", Quantity: dec("30"), SentAt: ts("2024-01-06T10:00:00Z")},
		{ProjectID: 1, Product: "CEMENTO", Quantity: dec("20"), SentAt: ts("2024-01-09T16:00:00Z")},
		{ProjectID: 2, Product: "LADRILLO", Quantity: dec("100"), SentAt: ts("2024-01-08T10:00:00Z")},
	}

	base, cutoff := reconcile.BuildBaseline(snapshots)
	consolidated := reconcile.Consolidate(
		base,
		reconcile.AggregateInflows(inbound, cutoff),
		reconcile.AggregateOutflows(outbound),
	)
	daily := reconcile.DailySeries(
		base,
		reconcile.AggregateInflowsDaily(inbound, cutoff, time.UTC),
		reconcile.AggregateOutflowsDaily(outbound, time.UTC),
	)

	finalRunning := make(map[entity.ProductKey]decimal.Decimal)
	for _, row := range daily {
		finalRunning[row.Key] = row.Running // la serie viene ordenada, la última gana
	}

	for _, row := range consolidated {
		if running, ok := finalRunning[row.Key]; ok {
			assert.True(t, row.Net.Equal(running),
				"llave %v: neto consolidado %s != saldo final diario %s", row.Key, row.Net, running)
		} else {
			assert.True(t, row.Net.Equal(row.Base),
				"llave %v sin actividad: el neto debe ser la base", row.Key)
		}
	}
}

func TestDailySeries_LlaveSoloFotoNoEmiteFilas(t *testing.T) {
	snapshots := []entity.SnapshotRecord{
		{ProjectID: 3, Description: "BREAKER 20A", Quantity: dec("12"), CapturedAt: tsp("2024-02-01T00:00:00Z")},
	}
	base, cutoff := reconcile.BuildBaseline(snapshots)

	daily := reconcile.DailySeries(
		base,
		reconcile.AggregateInflowsDaily(nil, cutoff, time.UTC),
		reconcile.AggregateOutflowsDaily(nil, time.UTC),
	)
	assert.Empty(t, daily, "sin días de actividad no hay fila a la cual anclar la llave")

	consolidated := reconcile.Consolidate(base,
		reconcile.AggregateInflows(nil, cutoff),
		reconcile.AggregateOutflows(nil),
	)
	require.Len(t, consolidated, 1, "en modo consolidado la llave sí aparece con neto = base")
	assert.True(t, dec("12").Equal(consolidated[0].Net))
}

// TestProductoSoloEnSalidas: una llave que solo existe en flujo_productos debe
// producir saldo negativo (base cero), calculado correctamente antes de que la
// vista de reporte lo filtre.
func TestProductoSoloEnSalidas(t *testing.T) {
	outbound := []entity.OutboundTransaction{
		{ProjectID: 9, Product: "GUANTE DIELECTRICO", Quantity: dec("4"), SentAt: ts("2024-03-10T11:00:00Z")},
	}

	daily := reconcile.DailySeries(
		nil,
		reconcile.AggregateInflowsDaily(nil, time.Time{}, time.UTC),
		reconcile.AggregateOutflowsDaily(outbound, time.UTC),
	)
	require.Len(t, daily, 1)
	assert.True(t, dec("-4").Equal(daily[0].Running), "sin base el saldo puede ser negativo")

	consolidated := reconcile.Consolidate(nil, nil, reconcile.AggregateOutflows(outbound))
	require.Len(t, consolidated, 1)
	assert.True(t, dec("-4").Equal(consolidated[0].Net),
		"el neto negativo se calcula; filtrarlo es decisión de la capa de reporte")
}

// TestDeterminismo: dos corridas sobre la misma entrada producen salidas
// idénticas elemento a elemento (orden incluido).
func TestDeterminismo(t *testing.T) {
	snapshots, inbound, outbound := escenarioCemento()

	run := func() ([]reconcile.ConsolidatedRow, []reconcile.DailyRow) {
		base, cutoff := reconcile.BuildBaseline(snapshots)
		c := reconcile.Consolidate(base,
			reconcile.AggregateInflows(inbound, cutoff),
			reconcile.AggregateOutflows(outbound))
		d := reconcile.DailySeries(base,
			reconcile.AggregateInflowsDaily(inbound, cutoff, time.UTC),
			reconcile.AggregateOutflowsDaily(outbound, time.UTC))
		return c, d
	}

	c1, d1 := run()
	c2, d2 := run()
	assert.Equal(t, c1, c2, "el consolidado debe ser idéntico entre corridas")
	assert.Equal(t, d1, d2, "la serie diaria debe ser idéntica entre corridas")
}

// TestDailySeries_SinDecaimientoEntreDias: entre días de actividad el saldo
// solo cambia por el movimiento firmado del día, sin reset ni decaimiento.
func TestDailySeries_SinDecaimientoEntreDias(t *testing.T) {
	snapshots := []entity.SnapshotRecord{
		{ProjectID: 1, Description: "ALAMBRE", Quantity: dec("10"), CapturedAt: tsp("2024-01-01T00:00:00Z")},
	}
	inbound := []entity.InboundTransaction{
		{ProjectID: 1, StandardizedProduct: "ALAMBRE", Quantity: dec("5"), UnitPrice: dec("1"), EmissionDate: ts("2024-01-02T10:00:00Z")},
		// brecha larga sin actividad
		{ProjectID: 1, StandardizedProduct: "ALAMBRE", Quantity: dec("7"), UnitPrice: dec("1"), EmissionDate: ts("2024-06-20T10:00:00Z")},
	}

	base, cutoff := reconcile.BuildBaseline(snapshots)
	daily := reconcile.DailySeries(base,
		reconcile.AggregateInflowsDaily(inbound, cutoff, time.UTC),
		reconcile.AggregateOutflowsDaily(nil, time.UTC))

	require.Len(t, daily, 2)
	assert.True(t, dec("15").Equal(daily[0].Running))
	assert.True(t, dec("22").Equal(daily[1].Running),
		"cinco meses sin actividad no alteran el saldo: 15 + 7 = 22")
}

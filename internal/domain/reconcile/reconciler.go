package reconcile

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// ConsolidatedRow es el saldo neto actual de una llave:
// neto = base + ingresos − salidas, con cero para la fuente ausente.
type ConsolidatedRow struct {
	Key     entity.ProductKey
	Base    decimal.Decimal
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
}

// Consolidate hace el full-outer-merge de las tres fuentes sobre la unión de
// llaves y devuelve el saldo neto de cada una, incluidas las llaves con neto
// negativo o cero: el filtro de la vista de reporte (neto > 0) es
// responsabilidad del consumidor, aquí el neto siempre se calcula.
//
// Salida ordenada por (ProjectID, Product) para que la misma entrada produzca
// siempre bytes idénticos.
func Consolidate(
	base map[entity.ProductKey]Baseline,
	inflows map[entity.ProductKey]decimal.Decimal,
	outflows map[entity.ProductKey]decimal.Decimal,
) []ConsolidatedRow {
	keys := unionKeys(base, inflows, outflows)

	rows := make([]ConsolidatedRow, 0, len(keys))
	for _, key := range keys {
		row := ConsolidatedRow{Key: key}
		if b, ok := base[key]; ok {
			row.Base = b.Quantity
		}
		if q, ok := inflows[key]; ok {
			row.Inflow = q
		}
		if q, ok := outflows[key]; ok {
			row.Outflow = q
		}
		row.Net = row.Base.Add(row.Inflow).Sub(row.Outflow)
		rows = append(rows, row)
	}
	return rows
}

// DailyRow es un día de actividad de una llave con su saldo acumulado al
// cierre de ese día. Inflow/Outflow traen el detalle crudo pre-agregado del
// día y son nil para el lado sin movimiento.
type DailyRow struct {
	Key     entity.ProductKey
	Day     time.Time
	Inflow  *DailyInflow
	Outflow *DailyOutflow
	Net     decimal.Decimal // movimiento del día: ingreso − salida
	Running decimal.Decimal // base + acumulado de movimientos hasta este día
}

// DailySeries construye la serie diaria de saldo por llave: para cada llave
// toma la unión de sus días con ingreso o salida, los ordena ascendente y los
// recorre una sola vez acumulando desde la cantidad base (cero si la llave no
// está en la foto). Un sort O(n log n) más un barrido O(n) por llave; el
// prefijo nunca se recalcula desde cero.
//
// Una llave con foto base pero sin actividad no produce filas: no hay día al
// cual anclarla (en modo consolidado sí aparece con neto = base).
//
// Los empates dentro de un mismo día ya vienen resueltos por la pre-agregación
// diaria, así que el orden cronológico estricto basta para el determinismo.
func DailySeries(
	base map[entity.ProductKey]Baseline,
	inflows map[entity.ProductKey]map[time.Time]DailyInflow,
	outflows map[entity.ProductKey]map[time.Time]DailyOutflow,
) []DailyRow {
	keys := unionActivityKeys(inflows, outflows)

	var rows []DailyRow
	for _, key := range keys {
		inDays := inflows[key]
		outDays := outflows[key]

		days := make(map[time.Time]struct{}, len(inDays)+len(outDays))
		for d := range inDays {
			days[d] = struct{}{}
		}
		for d := range outDays {
			days[d] = struct{}{}
		}
		sorted := make([]time.Time, 0, len(days))
		for d := range days {
			sorted = append(sorted, d)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

		running := decimal.Zero
		if b, ok := base[key]; ok {
			running = b.Quantity
		}
		for _, day := range sorted {
			row := DailyRow{Key: key, Day: day}
			if d, ok := inDays[day]; ok {
				in := d
				row.Inflow = &in
				row.Net = row.Net.Add(d.Quantity)
			}
			if d, ok := outDays[day]; ok {
				out := d
				row.Outflow = &out
				row.Net = row.Net.Sub(d.Quantity)
			}
			running = running.Add(row.Net)
			row.Running = running
			rows = append(rows, row)
		}
	}
	return rows
}

// unionKeys devuelve la unión ordenada de llaves de las tres fuentes
// consolidadas.
func unionKeys(
	base map[entity.ProductKey]Baseline,
	inflows map[entity.ProductKey]decimal.Decimal,
	outflows map[entity.ProductKey]decimal.Decimal,
) []entity.ProductKey {
	seen := make(map[entity.ProductKey]struct{}, len(base)+len(inflows)+len(outflows))
	for k := range base {
		seen[k] = struct{}{}
	}
	for k := range inflows {
		seen[k] = struct{}{}
	}
	for k := range outflows {
		seen[k] = struct{}{}
	}
	return sortKeys(seen)
}

func unionActivityKeys(
	inflows map[entity.ProductKey]map[time.Time]DailyInflow,
	outflows map[entity.ProductKey]map[time.Time]DailyOutflow,
) []entity.ProductKey {
	seen := make(map[entity.ProductKey]struct{}, len(inflows)+len(outflows))
	for k := range inflows {
		seen[k] = struct{}{}
	}
	for k := range outflows {
		seen[k] = struct{}{}
	}
	return sortKeys(seen)
}

func sortKeys(seen map[entity.ProductKey]struct{}) []entity.ProductKey {
	keys := make([]entity.ProductKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ProjectID != keys[j].ProjectID {
			return keys[i].ProjectID < keys[j].ProjectID
		}
		return keys[i].Product < keys[j].Product
	})
	return keys
}

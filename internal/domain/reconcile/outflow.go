package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// DailyOutflow es la salida pre-agregada de una llave en un día calendario.
// Simétrico a DailyInflow pero sin precio ni bandera de validación: el
// almacenista solo registra producto, cantidad y fecha de despacho.
type DailyOutflow struct {
	Quantity decimal.Decimal
	Unit     string // unidad del registro más reciente del día
	Count    int
	First    time.Time
	Last     time.Time
}

func outflowEligible(t entity.OutboundTransaction) bool {
	return t.ProjectID != 0 && t.Product != "" && t.Quantity.IsPositive()
}

// AggregateOutflows suma la cantidad despachada por ProductKey (modo consolidado).
// Las salidas no tienen corte temporal: el conteo físico es anterior a todas.
func AggregateOutflows(txs []entity.OutboundTransaction) map[entity.ProductKey]decimal.Decimal {
	totals := make(map[entity.ProductKey]decimal.Decimal)
	for _, t := range txs {
		if !outflowEligible(t) {
			continue
		}
		key := entity.ProductKey{ProjectID: t.ProjectID, Product: t.Product}
		totals[key] = totals[key].Add(t.Quantity)
	}
	return totals
}

// AggregateOutflowsDaily agrupa las salidas elegibles por (ProductKey, día
// calendario de despacho) en la zona horaria loc (nil = UTC).
func AggregateOutflowsDaily(
	txs []entity.OutboundTransaction,
	loc *time.Location,
) map[entity.ProductKey]map[time.Time]DailyOutflow {
	daily := make(map[entity.ProductKey]map[time.Time]DailyOutflow)
	for _, t := range txs {
		if !outflowEligible(t) {
			continue
		}
		key := entity.ProductKey{ProjectID: t.ProjectID, Product: t.Product}
		day := CalendarDay(t.SentAt, loc)

		days, ok := daily[key]
		if !ok {
			days = make(map[time.Time]DailyOutflow)
			daily[key] = days
		}

		d, ok := days[day]
		if !ok {
			days[day] = DailyOutflow{
				Quantity: t.Quantity,
				Unit:     t.Unit,
				Count:    1,
				First:    t.SentAt,
				Last:     t.SentAt,
			}
			continue
		}

		d.Quantity = d.Quantity.Add(t.Quantity)
		d.Count++
		if t.SentAt.Before(d.First) {
			d.First = t.SentAt
		}
		if !t.SentAt.Before(d.Last) {
			d.Last = t.SentAt
			if t.Unit != "" {
				d.Unit = t.Unit
			}
		}
		days[day] = d
	}
	return daily
}

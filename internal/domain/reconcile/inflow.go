package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// DailyInflow es el ingreso pre-agregado de una llave en un día calendario.
type DailyInflow struct {
	Quantity  decimal.Decimal
	Unit      string    // unidad de la línea más reciente del día
	Validated bool      // alguna línea del día fue validada manualmente
	Count     int       // líneas de factura agregadas
	First     time.Time // primera emisión del día
	Last      time.Time // última emisión del día
}

// inflowEligible decide si una línea de factura participa en la agregación de
// cantidades: cantidad positiva, nombre agrupable y emisión igual o posterior
// al corte de la foto base. Las líneas sin project_id no son cruzables y se
// descartan en silencio (tolerancia a datos sucios, nunca error duro).
func inflowEligible(t entity.InboundTransaction, cutoff time.Time) bool {
	if t.ProjectID == 0 || t.GroupingName() == "" {
		return false
	}
	if !t.Quantity.IsPositive() {
		return false
	}
	if !cutoff.IsZero() && t.EmissionDate.Before(cutoff) {
		return false // ya reflejada en el conteo físico
	}
	return true
}

// AggregateInflows suma la cantidad ingresada por ProductKey sobre todas las
// líneas elegibles, sin granularidad de fecha (modo consolidado).
func AggregateInflows(txs []entity.InboundTransaction, cutoff time.Time) map[entity.ProductKey]decimal.Decimal {
	totals := make(map[entity.ProductKey]decimal.Decimal)
	for _, t := range txs {
		if !inflowEligible(t, cutoff) {
			continue
		}
		key := entity.ProductKey{ProjectID: t.ProjectID, Product: t.GroupingName()}
		totals[key] = totals[key].Add(t.Quantity)
	}
	return totals
}

// AggregateInflowsDaily agrupa las líneas elegibles por (ProductKey, día
// calendario de emisión). El día se calcula en la zona horaria loc (nil = UTC)
// y se normaliza a medianoche UTC para que sirva de llave de mapa estable.
func AggregateInflowsDaily(
	txs []entity.InboundTransaction,
	cutoff time.Time,
	loc *time.Location,
) map[entity.ProductKey]map[time.Time]DailyInflow {
	daily := make(map[entity.ProductKey]map[time.Time]DailyInflow)
	for _, t := range txs {
		if !inflowEligible(t, cutoff) {
			continue
		}
		key := entity.ProductKey{ProjectID: t.ProjectID, Product: t.GroupingName()}
		day := CalendarDay(t.EmissionDate, loc)

		days, ok := daily[key]
		if !ok {
			days = make(map[time.Time]DailyInflow)
			daily[key] = days
		}

		d, ok := days[day]
		if !ok {
			days[day] = DailyInflow{
				Quantity:  t.Quantity,
				Unit:      t.Unit,
				Validated: t.ManuallyValidated,
				Count:     1,
				First:     t.EmissionDate,
				Last:      t.EmissionDate,
			}
			continue
		}

		d.Quantity = d.Quantity.Add(t.Quantity)
		d.Validated = d.Validated || t.ManuallyValidated
		d.Count++
		if t.EmissionDate.Before(d.First) {
			d.First = t.EmissionDate
		}
		if !t.EmissionDate.Before(d.Last) {
			d.Last = t.EmissionDate
			if t.Unit != "" {
				d.Unit = t.Unit // unidad representativa: la de la línea más reciente
			}
		}
		days[day] = d
	}
	return daily
}

// CalendarDay trunca un instante a su día calendario en loc, normalizado a
// medianoche UTC. Equivale al ::date de PostgreSQL sobre un timestamptz.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Package reconcile implementa el motor de conciliación y valorización de
// inventario: cruza la foto de inventario base, los ingresos por factura y
// las salidas de almacén para derivar el saldo neto por (proyecto, producto),
// ya sea como total consolidado o como serie diaria de saldo acumulado.
//
// Todo el paquete es puro: opera sobre slices inmutables ya cargados, no hace
// I/O y es determinista para una misma entrada.
package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// Baseline es el estado inicial de un ProductKey según la foto de inventario.
type Baseline struct {
	Quantity   decimal.Decimal
	Unit       string
	Group      string
	Reference  string
	CapturedAt *time.Time
}

// BuildBaseline indexa la foto de inventario por ProductKey y calcula la fecha
// de corte global: el created_at más antiguo de toda la foto, contando también
// las filas sin llave de cruce. Las facturas emitidas antes del corte ya están
// reflejadas en el conteo y se excluyen de los ingresos para no contar doble.
//
// Si ningún registro trae fecha, el corte devuelto es el time.Time cero y no
// se excluye ninguna factura.
//
// Llaves duplicadas: las cantidades se suman; el unidad/grupo/referencia no
// vacío más reciente (por created_at, nil cuenta como el más antiguo) gana.
func BuildBaseline(records []entity.SnapshotRecord) (map[entity.ProductKey]Baseline, time.Time) {
	base := make(map[entity.ProductKey]Baseline, len(records))
	var cutoff time.Time

	// fecha del registro que aportó los campos descriptivos vigentes, por llave
	fieldsAt := make(map[entity.ProductKey]*time.Time)

	for _, r := range records {
		// el corte se calcula sobre TODA la foto, incluidas las filas que no
		// producen llave de cruce: la fecha del conteo no depende de la llave
		if r.CapturedAt != nil && (cutoff.IsZero() || r.CapturedAt.Before(cutoff)) {
			cutoff = *r.CapturedAt
		}
		if r.ProjectID == 0 || r.Description == "" {
			continue // sin llave de cruce no hay fila que conciliar
		}

		key := entity.ProductKey{ProjectID: r.ProjectID, Product: r.Description}
		b, ok := base[key]
		if !ok {
			base[key] = Baseline{
				Quantity:   r.Quantity,
				Unit:       r.Unit,
				Group:      r.Group,
				Reference:  r.Reference,
				CapturedAt: r.CapturedAt,
			}
			fieldsAt[key] = r.CapturedAt
			continue
		}

		b.Quantity = b.Quantity.Add(r.Quantity)
		newer := newerSnapshot(fieldsAt[key], r.CapturedAt)
		if r.Unit != "" && (b.Unit == "" || newer) {
			b.Unit = r.Unit
		}
		if r.Group != "" && (b.Group == "" || newer) {
			b.Group = r.Group
		}
		if r.Reference != "" && (b.Reference == "" || newer) {
			b.Reference = r.Reference
		}
		if newer {
			b.CapturedAt = r.CapturedAt
			fieldsAt[key] = r.CapturedAt
		}
		base[key] = b
	}
	return base, cutoff
}

// newerSnapshot reporta si candidate es más reciente que current.
// nil se ordena antes que cualquier fecha.
func newerSnapshot(current, candidate *time.Time) bool {
	if candidate == nil {
		return false
	}
	if current == nil {
		return true
	}
	return candidate.After(*current)
}

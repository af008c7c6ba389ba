package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Parámetros de consulta ────────────────────────────────────────────────────

// InventoryReportRequest parámetros comunes de los dos reportes de inventario.
type InventoryReportRequest struct {
	// Project filtra por proyecto: un project_id numérico o un fragmento del
	// nombre (como ILIKE '%FRAGMENTO%'). Vacío = todos los proyectos.
	Project string `query:"proyecto"`
}

// ── Reporte consolidado ───────────────────────────────────────────────────────

// ConsolidatedRowDTO una fila del inventario consolidado valorizado.
// En la fila de gran total group/product/median_price/project_name van en nil.
type ConsolidatedRowDTO struct {
	ProjectName *string          `json:"project_name"`           // nil si el project_id no está en el directorio
	Group       *string          `json:"group"`                  // "UNGROUPED" si ninguna fuente clasifica el producto
	Product     *string          `json:"product"`                // nombre estandarizado
	NetQuantity decimal.Decimal  `json:"net_quantity"`           // base + ingresos − salidas, redondeado a 0 decimales
	MedianPrice *decimal.Decimal `json:"median_price"`           // mediana de precios de compra; 0 = sin precio
	TotalValue  decimal.Decimal  `json:"total_value"`            // net_quantity × median_price, 2 decimales
	GrandTotal  bool             `json:"grand_total,omitempty"`  // true solo en la fila sintética final
}

// ConsolidatedReportDTO respuesta de GET /api/inventario/consolidado.
// La última fila es siempre el gran total.
//
// RunID y GeneratedAt son metadatos de la corrida: para una misma entrada las
// filas son idénticas entre corridas, estos dos campos no.
type ConsolidatedReportDTO struct {
	RunID       uuid.UUID            `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Rows        []ConsolidatedRowDTO `json:"rows"`
}

// ── Reporte detallado (serie diaria) ─────────────────────────────────────────

// DetailedRowDTO un día de actividad de un (proyecto, producto) con su saldo
// acumulado al cierre. Los campos de ingreso/salida son nil para el lado sin
// movimiento ese día (full outer merge).
type DetailedRowDTO struct {
	ProjectID   int     `json:"project_id"`
	ProjectName *string `json:"project_name"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Product     string  `json:"product"`

	BaseQuantity     decimal.Decimal `json:"base_quantity"` // cero si la llave no está en la foto
	BaseUnit         string          `json:"base_unit"`
	Group            string          `json:"group"`
	Reference        string          `json:"reference"`
	BaseSnapshotDate *time.Time      `json:"base_snapshot_date"`

	InflowQuantity    *decimal.Decimal `json:"inflow_quantity"`
	InflowUnit        *string          `json:"inflow_unit"`
	ManuallyValidated *bool            `json:"manually_validated"`
	InflowTxCount     int              `json:"inflow_tx_count"`
	FirstInflowTS     *time.Time       `json:"first_inflow_ts"`
	LastInflowTS      *time.Time       `json:"last_inflow_ts"`

	OutflowQuantity *decimal.Decimal `json:"outflow_quantity"`
	OutflowUnit     *string          `json:"outflow_unit"`
	OutflowTxCount  int              `json:"outflow_tx_count"`
	FirstOutflowTS  *time.Time       `json:"first_outflow_ts"`
	LastOutflowTS   *time.Time       `json:"last_outflow_ts"`

	NetMovement    decimal.Decimal `json:"net_movement"`    // ingreso − salida del día
	RunningBalance decimal.Decimal `json:"running_balance"` // base + acumulado hasta este día
	UnitPrice      decimal.Decimal `json:"unit_price"`      // mediana agrupada entre proyectos; 0 = sin precio
	RowValue       decimal.Decimal `json:"row_value"`       // running_balance × unit_price, 2 decimales
}

// DetailedReportDTO respuesta de GET /api/inventario/detallado.
// RunID y GeneratedAt son metadatos de la corrida, no parte de las filas
// deterministas.
type DetailedReportDTO struct {
	RunID       uuid.UUID        `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Rows        []DetailedRowDTO `json:"rows"`
}

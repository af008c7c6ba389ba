package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotRecord es una fila de la foto de inventario base (tabla inventario).
// Es el punto de partida del balance: lo contado físicamente en bodega de obra.
type SnapshotRecord struct {
	ProjectID   int
	Description string          // descripcion (coincide con producto_estandarizado de facturas)
	Quantity    decimal.Decimal // cantidad = stock contado
	Unit        string          // unidad
	Group       string          // grupo (vacío si el conteo no lo registró)
	Reference   string          // referencia libre del almacenista
	CapturedAt  *time.Time      // created_at; nil si el conteo no tiene fecha
}

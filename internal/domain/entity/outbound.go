package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutboundTransaction es una salida de material registrada por el almacenista
// (tabla flujo_productos): material que se consumió en obra.
type OutboundTransaction struct {
	ID        int64
	ProjectID int
	Product   string          // producto (nombre estandarizado)
	Quantity  decimal.Decimal // cantidad despachada
	Unit      string
	SentAt    time.Time // sent_date
}

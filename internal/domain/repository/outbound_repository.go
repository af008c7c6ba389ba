package repository

import (
	"context"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// OutboundRepository lee las salidas de material registradas por el
// almacenista (tabla flujo_productos).
type OutboundRepository interface {
	ListAll(ctx context.Context) ([]entity.OutboundTransaction, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/repository"
)

var _ repository.OutboundRepository = (*OutboundRepo)(nil)

// OutboundRepo lee las salidas de almacén (tabla flujo_productos).
type OutboundRepo struct {
	pool *pgxpool.Pool
}

// NewOutboundRepository construye el adaptador.
func NewOutboundRepository(pool *pgxpool.Pool) *OutboundRepo {
	return &OutboundRepo{pool: pool}
}

// ListAll devuelve todas las salidas cruzables (con project_id y fecha).
func (r *OutboundRepo) ListAll(ctx context.Context) ([]entity.OutboundTransaction, error) {
	const query = `
	SELECT
	    fp.id,
	    fp.project_id,
	    COALESCE(fp.producto, '') AS producto,
	    COALESCE(fp.cantidad, 0)  AS cantidad,
	    COALESCE(fp.unidad, '')   AS unidad,
	    fp.sent_date
	FROM flujo_productos fp
	WHERE fp.project_id IS NOT NULL
	  AND fp.sent_date IS NOT NULL`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("outbound.ListAll: %w", err)
	}
	defer rows.Close()

	var txs []entity.OutboundTransaction
	for rows.Next() {
		var t entity.OutboundTransaction
		if err := rows.Scan(
			&t.ID,
			&t.ProjectID,
			&t.Product,
			&t.Quantity,
			&t.Unit,
			&t.SentAt,
		); err != nil {
			return nil, fmt.Errorf("outbound.ListAll scan: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

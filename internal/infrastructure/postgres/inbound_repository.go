package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/repository"
)

var _ repository.InboundRepository = (*InboundRepo)(nil)

// InboundRepo lee las líneas de factura de compra unidas a su cabecera
// (factura + factura_detalle).
type InboundRepo struct {
	pool *pgxpool.Pool
}

// NewInboundRepository construye el adaptador.
func NewInboundRepository(pool *pgxpool.Pool) *InboundRepo {
	return &InboundRepo{pool: pool}
}

// ListAll devuelve todas las líneas de compra. Las facturas sin project_id
// salen con ProjectID cero: el agregador de cantidades las descarta pero el
// estimador de precios sí las aprovecha, porque el precio de mercado de un
// producto no depende del proyecto que lo compró.
func (r *InboundRepo) ListAll(ctx context.Context) ([]entity.InboundTransaction, error) {
	const query = `
	SELECT
	    f.factura_id,
	    f.fecha_emision,
	    COALESCE(f.project_id, 0)                  AS project_id,
	    COALESCE(fd.producto_estandarizado, '')    AS producto_estandarizado,
	    COALESCE(fd.descripcion, '')               AS descripcion,
	    COALESCE(fd.cantidad, 0)                   AS cantidad,
	    COALESCE(fd.precio_unitario, 0)            AS precio_unitario,
	    COALESCE(fd.unidad, '')                    AS unidad,
	    COALESCE(fd.validado_manualmente, FALSE)   AS validado_manualmente
	FROM factura_detalle fd
	JOIN factura f ON f.factura_id = fd.factura_id
	WHERE f.fecha_emision IS NOT NULL`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inbound.ListAll: %w", err)
	}
	defer rows.Close()

	var txs []entity.InboundTransaction
	for rows.Next() {
		var t entity.InboundTransaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.EmissionDate,
			&t.ProjectID,
			&t.StandardizedProduct,
			&t.Description,
			&t.Quantity,
			&t.UnitPrice,
			&t.Unit,
			&t.ManuallyValidated,
		); err != nil {
			return nil, fmt.Errorf("inbound.ListAll scan: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

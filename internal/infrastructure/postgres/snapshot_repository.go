package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo lee la foto de inventario base (tabla inventario) con pgx.
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el adaptador.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// ListAll devuelve el conteo físico completo. Las filas sin project_id o sin
// descripción no son cruzables y se filtran desde SQL.
func (r *SnapshotRepo) ListAll(ctx context.Context) ([]entity.SnapshotRecord, error) {
	const query = `
	SELECT
	    i.project_id,
	    i.descripcion,
	    COALESCE(i.cantidad, 0)   AS cantidad,
	    COALESCE(i.unidad, '')    AS unidad,
	    COALESCE(i.grupo, '')     AS grupo,
	    COALESCE(i.referencia, '') AS referencia,
	    i.created_at
	FROM inventario i
	WHERE i.project_id IS NOT NULL
	  AND COALESCE(i.descripcion, '') <> ''`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.ListAll: %w", err)
	}
	defer rows.Close()

	var records []entity.SnapshotRecord
	for rows.Next() {
		var rec entity.SnapshotRecord
		var capturedAt *time.Time
		if err := rows.Scan(
			&rec.ProjectID,
			&rec.Description,
			&rec.Quantity,
			&rec.Unit,
			&rec.Group,
			&rec.Reference,
			&capturedAt,
		); err != nil {
			return nil, fmt.Errorf("snapshot.ListAll scan: %w", err)
		}
		rec.CapturedAt = capturedAt
		records = append(records, rec)
	}
	return records, rows.Err()
}

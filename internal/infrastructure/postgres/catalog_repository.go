package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lee el catálogo maestro de productos (tabla catalogo_maestro).
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// ListAll devuelve las entradas con descripción y grupo utilizables.
func (r *CatalogRepo) ListAll(ctx context.Context) ([]entity.CatalogEntry, error) {
	const query = `
	SELECT cm.descripcion, cm.grupo
	FROM catalogo_maestro cm
	WHERE COALESCE(cm.descripcion, '') <> ''
	  AND COALESCE(cm.grupo, '') <> ''`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListAll: %w", err)
	}
	defer rows.Close()

	var entries []entity.CatalogEntry
	for rows.Next() {
		var e entity.CatalogEntry
		if err := rows.Scan(&e.Description, &e.Group); err != nil {
			return nil, fmt.Errorf("catalog.ListAll scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

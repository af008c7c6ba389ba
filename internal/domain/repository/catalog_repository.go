package repository

import (
	"context"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// CatalogRepository lee el catálogo maestro de clasificación de productos
// (tabla catalogo_maestro), la fuente de menor prioridad para resolver grupos.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]entity.CatalogEntry, error)
}

package repository

import (
	"context"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// SnapshotRepository lee la foto de inventario base (tabla inventario).
// Read-only: el motor nunca muta las fuentes.
type SnapshotRepository interface {
	// ListAll devuelve todos los registros del conteo físico, de todos los
	// proyectos. El motor necesita la foto completa para calcular el corte
	// global y la unión de llaves.
	ListAll(ctx context.Context) ([]entity.SnapshotRecord, error)
}

package repository

import (
	"context"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// ProjectRepository lee el directorio de proyectos (tabla projects).
// Dato de referencia: solo se usa para resolver nombres de despliegue.
type ProjectRepository interface {
	ListAll(ctx context.Context) ([]entity.Project, error)
}

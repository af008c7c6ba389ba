package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo lee el directorio de proyectos (tabla projects).
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// ListAll devuelve todos los proyectos conocidos.
func (r *ProjectRepo) ListAll(ctx context.Context) ([]entity.Project, error) {
	const query = `
	SELECT p.project_id, COALESCE(p.nombre_proyecto, '') AS nombre_proyecto
	FROM projects p`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("project.ListAll: %w", err)
	}
	defer rows.Close()

	var projects []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("project.ListAll scan: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

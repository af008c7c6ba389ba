package reconcile

import (
	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// Ungrouped es el grupo centinela para productos sin clasificación en ninguna
// de las dos fuentes. Es un valor de salida normal, no un error.
const Ungrouped = "UNGROUPED"

// Catalog resuelve el grupo de clasificación de una descripción de producto.
// Se construye una vez por corrida y se pasa explícito a quien lo necesite;
// el grupo es propiedad de la descripción, no varía por proyecto.
type Catalog struct {
	groups map[string]string
}

// BuildCatalog construye el mapa resuelto a partir de las dos fuentes en orden
// de prioridad: el grupo registrado en la misma foto de inventario gana sobre
// el catálogo maestro. Dentro de una misma fuente gana la primera aparición
// (desempate arbitrario pero determinista).
func BuildCatalog(snapshots []entity.SnapshotRecord, master []entity.CatalogEntry) *Catalog {
	groups := make(map[string]string, len(snapshots)+len(master))
	for _, r := range snapshots {
		if r.Description == "" || r.Group == "" {
			continue
		}
		if _, ok := groups[r.Description]; !ok {
			groups[r.Description] = r.Group
		}
	}
	for _, e := range master {
		if e.Description == "" || e.Group == "" {
			continue
		}
		if _, ok := groups[e.Description]; !ok {
			groups[e.Description] = e.Group
		}
	}
	return &Catalog{groups: groups}
}

// Resolve devuelve el grupo de la descripción, o el centinela Ungrouped si
// ninguna fuente la clasifica.
func (c *Catalog) Resolve(description string) string {
	if g, ok := c.groups[description]; ok {
		return g
	}
	return Ungrouped
}

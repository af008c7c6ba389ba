package entity

// CatalogEntry mapea una descripción de producto a su grupo de clasificación
// (tabla catalogo_maestro). Es la fuente de menor prioridad para resolver el
// grupo: los registros del inventario base tienen precedencia.
type CatalogEntry struct {
	Description string // descripcion
	Group       string // grupo
}

package entity

// Project es un proyecto de obra (dato de referencia, nunca mutado por el motor).
type Project struct {
	ID   int    // projects.project_id
	Name string // projects.nombre_proyecto (ej: PRIMAVERA, FAUNA, JAGGUA)
}

// ProductKey es la llave de agrupación primaria del motor: un producto
// estandarizado dentro de un proyecto. Dos registros con el mismo ProductKey
// en fuentes distintas refieren al mismo ítem físico de stock.
type ProductKey struct {
	ProjectID int
	Product   string // nombre estandarizado (o descripción cruda como fallback)
}

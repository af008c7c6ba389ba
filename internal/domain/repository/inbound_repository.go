package repository

import (
	"context"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// InboundRepository lee los ingresos de material: líneas de factura ya unidas
// a su cabecera (factura + factura_detalle).
type InboundRepository interface {
	// ListAll devuelve todas las líneas con su fecha de emisión y project_id
	// de cabecera. Incluye líneas cuya factura no tiene proyecto (ProjectID
	// cero): no son cruzables para cantidades, pero sí aportan evidencia de
	// precio al estimador.
	ListAll(ctx context.Context) ([]entity.InboundTransaction, error)
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundTransaction es una línea de factura de compra ya unida a su cabecera
// (factura + factura_detalle): material que ingresó al proyecto.
type InboundTransaction struct {
	TransactionID       int64           // factura.factura_id
	EmissionDate        time.Time       // factura.fecha_emision
	ProjectID           int             // factura.project_id
	StandardizedProduct string          // factura_detalle.producto_estandarizado (puede estar vacío)
	Description         string          // factura_detalle.descripcion (fallback de agrupación)
	Quantity            decimal.Decimal // factura_detalle.cantidad
	UnitPrice           decimal.Decimal // factura_detalle.precio_unitario (cero = sin precio)
	Unit                string          // factura_detalle.unidad
	ManuallyValidated   bool            // factura_detalle.validado_manualmente
}

// GroupingName devuelve el nombre con el que la línea participa en la
// agregación de cantidades: el estandarizado, o la descripción cruda si falta.
// Vacío significa que la fila no es agrupable y debe excluirse.
func (t InboundTransaction) GroupingName() string {
	if t.StandardizedProduct != "" {
		return t.StandardizedProduct
	}
	return t.Description
}

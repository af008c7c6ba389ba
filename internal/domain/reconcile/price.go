package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iserv/inventario-obras/internal/domain/entity"
)

// MedianPrices calcula el precio unitario estimado por producto estandarizado:
// la mediana muestral de los precios históricos de compra, agrupando las
// líneas de TODOS los proyectos (el precio de mercado de un producto no
// depende de la obra que lo compró).
//
// Elegibilidad: cantidad > 0, precio > 0 y nombre estandarizado no vacío.
// El corte de la foto base NO aplica aquí: una compra vieja sigue siendo
// evidencia válida de precio. Un producto sin líneas elegibles simplemente no
// aparece en el mapa; el consumidor debe tratar la ausencia como precio cero
// ("sin precio"), nunca como fallo.
func MedianPrices(txs []entity.InboundTransaction) map[string]decimal.Decimal {
	samples := make(map[string][]decimal.Decimal)
	for _, t := range txs {
		if t.StandardizedProduct == "" {
			continue
		}
		if !t.Quantity.IsPositive() || !t.UnitPrice.IsPositive() {
			continue
		}
		samples[t.StandardizedProduct] = append(samples[t.StandardizedProduct], t.UnitPrice)
	}

	prices := make(map[string]decimal.Decimal, len(samples))
	for product, values := range samples {
		prices[product] = Median(values)
	}
	return prices
}

// Median devuelve la mediana con interpolación lineal: con n impar el valor
// central, con n par el promedio aritmético de los dos centrales. Una muestra
// vacía vale cero (default explícito, no error).
func Median(values []decimal.Decimal) decimal.Decimal {
	n := len(values)
	if n == 0 {
		return decimal.Zero
	}

	sorted := make([]decimal.Decimal, n)
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	if n%2 == 1 {
		return sorted[n/2]
	}
	return decimal.Avg(sorted[n/2-1], sorted[n/2])
}

// Package format contiene utilidades de presentación para reportes:
// moneda en formato colombiano y traducción de códigos de unidad UNECE.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// COP formatea un valor en pesos colombianos: redondeado a entero, puntos como
// separador de miles y sin decimales. Ej: 53402979.67 → "$53.402.980".
func COP(value decimal.Decimal) string {
	s := value.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// Unit traduce los códigos de unidad UNECE que traen las facturas electrónicas
// a las abreviaturas usadas en obra. Los códigos no mapeados se devuelven tal
// cual.
func Unit(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "94", "NAR", "NIU", "EA":
		return "UND"
	case "MTR":
		return "M"
	case "ZZ":
		return "SERVICIO"
	default:
		return strings.TrimSpace(code)
	}
}

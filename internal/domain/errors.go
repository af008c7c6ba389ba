package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// El motor de conciliación es deliberadamente tolerante: las filas sucias se
// excluyen en silencio y nunca producen errores. El único fallo estructural
// posible es no poder cargar una fuente completa.
var ErrSourceLoad = errors.New("no se pudo cargar una fuente de datos")

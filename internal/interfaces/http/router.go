package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iserv/inventario-obras/internal/application/inventario"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventarioUC *inventario.UseCase
	ReportPDF    inventario.ReportPDFGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inv := api.Group("/inventario")
	handler := NewInventarioHandler(deps.InventarioUC, deps.ReportPDF)
	inv.Get("/consolidado", handler.GetConsolidated)
	inv.Get("/consolidado/pdf", handler.GetConsolidatedPDF)
	inv.Get("/detallado", handler.GetDetailed)
}

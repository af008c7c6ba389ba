package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iserv/inventario-obras/internal/application/dto"
	"github.com/iserv/inventario-obras/internal/application/inventario"
	"github.com/iserv/inventario-obras/internal/domain"
)

// InventarioHandler maneja los endpoints del inventario conciliado y valorizado.
type InventarioHandler struct {
	uc  *inventario.UseCase
	pdf inventario.ReportPDFGenerator
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase, pdf inventario.ReportPDFGenerator) *InventarioHandler {
	return &InventarioHandler{uc: uc, pdf: pdf}
}

// reportError mapea un fallo de corrida a la respuesta HTTP: fuente
// inaccesible es 503, cualquier otro fallo es 500.
func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrSourceLoad) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "SOURCE_UNAVAILABLE", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "REPORT_FAILED", Message: err.Error(),
	})
}

// GetConsolidated godoc
// @Summary      Inventario consolidado valorizado por proyecto y producto
// @Description  Neto actual (base + ingresos − salidas) con precio mediano de compra
//               y fila de gran total. Opcionalmente filtrado por proyecto.
// @Tags         inventario
// @Produce      json
// @Param        proyecto  query  string  false  "project_id numérico o fragmento del nombre (ILIKE)"
// @Success      200  {object}  dto.ConsolidatedReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/consolidado [get]
func (h *InventarioHandler) GetConsolidated(c *fiber.Ctx) error {
	var req dto.InventoryReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.uc.ConsolidatedReport(c.Context(), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(report)
}

// GetDetailed godoc
// @Summary      Serie diaria de saldo acumulado por proyecto y producto
// @Description  Un registro por (proyecto, producto, día de actividad) con el detalle
//               crudo de ingresos/salidas del día y el saldo corrido valorizado.
// @Tags         inventario
// @Produce      json
// @Param        proyecto  query  string  false  "project_id numérico o fragmento del nombre (ILIKE)"
// @Success      200  {object}  dto.DetailedReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/detallado [get]
func (h *InventarioHandler) GetDetailed(c *fiber.Ctx) error {
	var req dto.InventoryReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.uc.DetailedReport(c.Context(), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(report)
}

// GetConsolidatedPDF godoc
// @Summary      Inventario consolidado en PDF
// @Description  El mismo reporte consolidado, renderizado como documento imprimible
//               con montos en formato colombiano.
// @Tags         inventario
// @Produce      application/pdf
// @Param        proyecto  query  string  false  "project_id numérico o fragmento del nombre (ILIKE)"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/consolidado/pdf [get]
func (h *InventarioHandler) GetConsolidatedPDF(c *fiber.Ctx) error {
	var req dto.InventoryReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.uc.ConsolidatedReport(c.Context(), req)
	if err != nil {
		return reportError(c, err)
	}

	title := "Inventario Consolidado"
	if req.Project != "" {
		title += " — " + req.Project
	}
	doc, err := h.pdf.GenerateConsolidatedPDF(c.Context(), report, title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "PDF_FAILED", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario_consolidado.pdf"`)
	return c.Send(doc)
}

package inventario

import (
	"context"

	"github.com/iserv/inventario-obras/internal/application/dto"
)

// ReportPDFGenerator renderiza el reporte consolidado como documento PDF.
// La implementación vive en infraestructura (Maroto).
type ReportPDFGenerator interface {
	GenerateConsolidatedPDF(ctx context.Context, report *dto.ConsolidatedReportDTO, title string) ([]byte, error)
}

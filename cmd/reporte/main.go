// reporte ejecuta una corrida del motor de conciliación contra la base de
// datos y escribe el inventario consolidado valorizado, como tabla de texto o
// como PDF. Es la misma computación batch que expone la API, sin HTTP.
//
// Uso:
//
//	go run ./cmd/reporte                     # todos los proyectos, tabla en stdout
//	go run ./cmd/reporte -proyecto PRIMAVERA # filtra por nombre (o project_id)
//	go run ./cmd/reporte -pdf reporte.pdf    # escribe el PDF en vez de la tabla
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/iserv/inventario-obras/internal/application/dto"
	"github.com/iserv/inventario-obras/internal/application/inventario"
	infrapdf "github.com/iserv/inventario-obras/internal/infrastructure/pdf"
	"github.com/iserv/inventario-obras/internal/infrastructure/postgres"
	"github.com/iserv/inventario-obras/pkg/config"
	"github.com/iserv/inventario-obras/pkg/format"
	"github.com/iserv/inventario-obras/pkg/logger"
)

func main() {
	proyecto := flag.String("proyecto", "", "filtrar por project_id o fragmento del nombre")
	pdfPath := flag.String("pdf", "", "escribir el reporte como PDF en esta ruta")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := inventario.NewUseCase(
		postgres.NewSnapshotRepository(pool),
		postgres.NewInboundRepository(pool),
		postgres.NewOutboundRepository(pool),
		postgres.NewProjectRepository(pool),
		postgres.NewCatalogRepository(pool),
		cfg.Report.Location(),
	)

	report, err := uc.ConsolidatedReport(ctx, dto.InventoryReportRequest{Project: *proyecto})
	if err != nil {
		log.Fatal().Err(err).Msg("generar reporte consolidado")
	}

	if *pdfPath != "" {
		title := "Inventario Consolidado"
		if *proyecto != "" {
			title += " — " + *proyecto
		}
		doc, err := infrapdf.NewMarotoReportGenerator().GenerateConsolidatedPDF(ctx, report, title)
		if err != nil {
			log.Fatal().Err(err).Msg("generar PDF")
		}
		if err := os.WriteFile(*pdfPath, doc, 0o644); err != nil {
			log.Fatal().Err(err).Msg("escribir PDF")
		}
		fmt.Printf("PDF escrito en %s (%d filas)\n", *pdfPath, len(report.Rows))
		return
	}

	printTable(report)
}

// printTable escribe el consolidado como tabla alineada con montos en formato
// colombiano.
func printTable(report *dto.ConsolidatedReportDTO) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROYECTO\tGRUPO\tPRODUCTO\tCANTIDAD\tP. MEDIANO\tVALOR")

	for _, r := range report.Rows {
		if r.GrandTotal {
			fmt.Fprintf(w, "TOTAL\t\t\t%s\t\t%s\n",
				r.NetQuantity.StringFixed(0), format.COP(r.TotalValue))
			continue
		}
		name := "—"
		if r.ProjectName != nil {
			name = *r.ProjectName
		}
		price := "—"
		if r.MedianPrice != nil && r.MedianPrice.IsPositive() {
			price = format.COP(*r.MedianPrice)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name, deref(r.Group), deref(r.Product),
			r.NetQuantity.StringFixed(0), price, format.COP(r.TotalValue))
	}
	_ = w.Flush()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

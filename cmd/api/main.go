package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/iserv/inventario-obras/internal/application/inventario"
	infrapdf "github.com/iserv/inventario-obras/internal/infrastructure/pdf"
	"github.com/iserv/inventario-obras/internal/infrastructure/postgres"
	httpRouter "github.com/iserv/inventario-obras/internal/interfaces/http"
	"github.com/iserv/inventario-obras/pkg/config"
	"github.com/iserv/inventario-obras/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Report.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	snapshotRepo := postgres.NewSnapshotRepository(pool)
	inboundRepo := postgres.NewInboundRepository(pool)
	outboundRepo := postgres.NewOutboundRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)

	inventarioUC := inventario.NewUseCase(
		snapshotRepo, inboundRepo, outboundRepo, projectRepo, catalogRepo,
		cfg.Report.Location(),
	)
	reportPDF := infrapdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los reportes recorren los tres libros completos
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventarioUC: inventarioUC,
		ReportPDF:    reportPDF,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// mountSwagger registra la UI de Swagger solo si el documento existe: el
// middleware lee el archivo al montarse y entra en pánico si no está, y un
// despliegue sin documentación no debe tumbar los endpoints de reportes.
func mountSwagger(app *fiber.App, log *logger.Logger, docPath string) bool {
	if _, err := os.Stat(docPath); err != nil {
		log.Warn().Str("path", docPath).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: docPath,
		Path:     "docs",
		Title:    "Inventario Obras API",
	}))
	return true
}

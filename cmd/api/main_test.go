package main

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iserv/inventario-obras/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// El documento del repositorio debe existir y montarse: el middleware lo lee
// al registrarse y sin archivo derribaría el servidor antes de Listen.
func TestMountSwagger_DocumentoDelRepositorio(t *testing.T) {
	app := fiber.New()

	mounted := mountSwagger(app, testLogger(), "../../docs/swagger.json")
	require.True(t, mounted, "docs/swagger.json debe venir en el repositorio")
}

func TestMountSwagger_SinDocumentoNoDerribaElServidor(t *testing.T) {
	app := fiber.New()

	assert.NotPanics(t, func() {
		mounted := mountSwagger(app, testLogger(), "no-existe/swagger.json")
		assert.False(t, mounted, "sin documento se omite la UI, sin pánico")
	})
}

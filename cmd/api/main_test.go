package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountSwaggerUI_SinSpecNoMontaNiEntraEnPanico(t *testing.T) {
	app := fiber.New()
	missing := filepath.Join(t.TempDir(), "swagger.json")

	assert.NotPanics(t, func() {
		assert.False(t, mountSwaggerUI(app, missing),
			"sin el spec el visor no debe montarse")
	})

	// La app sigue sirviendo el resto de rutas.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMountSwaggerUI_ConSpecSirveElVisor(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	content := `{"swagger":"2.0","info":{"title":"Catálogo API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(spec, []byte(content), 0o644))

	app := fiber.New()
	require.True(t, mountSwaggerUI(app, spec))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

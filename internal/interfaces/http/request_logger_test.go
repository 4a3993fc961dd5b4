package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/clasificador/internal/interfaces/http"
	"github.com/jhoicas/clasificador/pkg/logger"
)

func TestRequestLogger_RegistraYPropagaID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Out: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/api/tables/:table", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("nada")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tables/x", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "/api/tables/x", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
}

func TestRequestLogger_GeneraID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)
}

package http

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/destinity-erp/pkg/jwt"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

const logTestSecret = "logging-test-secret"

func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), "una sola línea JSON: %s", buf.String())
	return line
}

func TestRequestLogger_IncluyeUserIDDelToken(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(logger.NewWithWriter(&buf, "info")))
	app.Get("/privado", AuthMiddleware(logTestSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tok, err := pkgjwt.Generate(logTestSecret, pkgjwt.Identity{UserID: "64b7f0c2a1b2c3d4e5f60718", Role: "Gerente"}, "test", 5)
	require.NoError(t, err)
	req := newRequest("/privado")
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	line := accessLine(t, &buf)
	assert.Equal(t, "access", line["component"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, float64(fiber.StatusOK), line["status"])
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", line["user_id"])
}

func TestRequestLogger_SinTokenNoAgregaUserID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(logger.NewWithWriter(&buf, "info")))
	app.Get("/abierto", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(newRequest("/abierto"), -1)
	require.NoError(t, err)
	resp.Body.Close()

	line := accessLine(t, &buf)
	assert.Equal(t, "warn", line["level"])
	assert.NotContains(t, line, "user_id")
}

package http

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/destinity-erp/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cases := map[domain.Kind]int{
		domain.KindBusinessRule:     fiber.StatusConflict,
		domain.KindNotFound:         fiber.StatusNotFound,
		domain.KindValidationFailed: fiber.StatusBadRequest,
		domain.KindInvalidInput:     fiber.StatusBadRequest,
		domain.KindDatabase:         fiber.StatusInternalServerError,
		domain.KindDuplicatedKey:    fiber.StatusInternalServerError,
	}
	for _, kind := range domain.Kinds() {
		want, ok := cases[kind]
		if assert.True(t, ok, "kind sin status: %s", kind) {
			assert.Equal(t, want, StatusFor(kind), string(kind))
		}
	}
}

func TestErrorMapper_CuentaFallosPorTipo(t *testing.T) {
	metrics := NewMetrics("erp_test")
	mapper := NewErrorMapper(nil, metrics)

	app := fiber.New()
	app.Get("/dup", func(c *fiber.Ctx) error {
		return mapper.Respond(c, domain.DuplicatedKey("Ya existe un registro con los mismos datos únicos.", errors.New("E11000")))
	})
	app.Get("/raw", func(c *fiber.Ctx) error {
		return mapper.Respond(c, errors.New("boom"))
	})

	for _, path := range []string{"/dup", "/dup", "/raw"} {
		resp, err := app.Test(newRequest(path), -1)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.domainFailuresTotal.WithLabelValues(string(domain.KindDuplicatedKey))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.domainFailuresTotal.WithLabelValues(CodeUnexpected)))
}

func TestErrorMapper_MetricasOpcionales(t *testing.T) {
	mapper := NewErrorMapper(nil, nil)
	app := fiber.New()
	app.Get("/nf", func(c *fiber.Ctx) error {
		return mapper.Respond(c, domain.NotFound("No hay ventas registradas"))
	})

	resp, err := app.Test(newRequest("/nf"), -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

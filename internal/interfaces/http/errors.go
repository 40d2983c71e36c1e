package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

// Códigos de error propios de la capa HTTP.
const (
	CodeUnexpected  = "UNEXPECTED"
	CodeInvalidBody = "INVALID_BODY"

	unexpectedMessage = "Error interno inesperado"
)

// StatusFor traduce el Kind de un fallo del dominio a un código HTTP.
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindBusinessRule:
		return fiber.StatusConflict
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindValidationFailed, domain.KindInvalidInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorMapper escribe la respuesta de error de un caso de uso y la contabiliza.
type ErrorMapper struct {
	log     *logger.Logger
	metrics *Metrics
}

// NewErrorMapper construye el mapper; metrics puede ser nil.
func NewErrorMapper(log *logger.Logger, metrics *Metrics) *ErrorMapper {
	if log == nil {
		log = logger.Nop()
	}
	return &ErrorMapper{log: log.Named("http"), metrics: metrics}
}

// Respond responde con el status del Kind y {code, message, field}. Un error
// no clasificado responde 500 con un cuerpo fijo y solo se registra en el log.
func (m *ErrorMapper) Respond(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		m.log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("path", c.Path()).
			Msg("error no clasificado")
		m.metrics.recordFailure(CodeUnexpected)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    CodeUnexpected,
			Message: unexpectedMessage,
		})
	}

	status := StatusFor(de.Kind)
	if status >= fiber.StatusInternalServerError {
		m.log.Error().Err(de.Unwrap()).
			Str("kind", string(de.Kind)).
			Str("request_id", requestID(c)).
			Msg(de.Message)
	}
	m.metrics.recordFailure(string(de.Kind))
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    string(de.Kind),
		Message: de.Message,
		Field:   de.Field,
	})
}

// badBody responde 400 cuando el cuerpo no es JSON válido.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

// ErrorHandler es el manejador de errores de Fiber: los *fiber.Error conservan
// su código y cualquier otro error responde el 500 genérico.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				code = "ROUTE_NOT_FOUND"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		log.Error().Err(err).Str("request_id", requestID(c)).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    CodeUnexpected,
			Message: unexpectedMessage,
		})
	}
}

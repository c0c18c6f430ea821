package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/invoice-manager/internal/application/dto"
	"github.com/jhoicas/invoice-manager/internal/domain"
	"github.com/jhoicas/invoice-manager/internal/domain/validation"
)

// writeError traduce errores de dominio a respuestas HTTP.
// Solo los fallos del almacenamiento se registran como error.
func writeError(c *fiber.Ctx, err error) error {
	var fe *validation.FieldError
	switch {
	case errors.As(err, &fe):
		log.Debug().Str("code", string(fe.Code)).Str("path", c.Path()).Msg("validación rechazada")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: string(fe.Code), Message: fe.Message})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Invoice not found."})
	case errors.Is(err, domain.ErrNoCustomers):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_CUSTOMERS", Message: "Create a customer first."})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "Pick a customer."})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// notFoundMessage es el ÚNICO mensaje de 404 del API. Una negación cross-tenant
// y un id inexistente producen bytes idénticos; cualquier variación permitiría
// enumerar recursos ajenos.
const notFoundMessage = "recurso no encontrado"

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Status: fiber.StatusUnauthorized, Type: dto.ErrTypeUnauthorized, Message: message,
	})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Status: fiber.StatusForbidden, Type: dto.ErrTypeForbidden, Message: message,
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Status: fiber.StatusNotFound, Type: dto.ErrTypeNotFound, Message: notFoundMessage,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Status: fiber.StatusBadRequest, Type: dto.ErrTypeBadRequest, Message: message,
	})
}

// respondError traduce errores de dominio al contrato de error HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var transition *entity.InvalidStatusTransitionError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return unauthorized(c, "credenciales inválidas")
	case errors.Is(err, domain.ErrAccessDenied):
		return forbidden(c, "acceso denegado")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c)
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "entrada inválida")
	case errors.As(err, &transition):
		return badRequest(c, transition.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Status: fiber.StatusConflict, Type: dto.ErrTypeConflict, Message: "conflicto con el estado actual del recurso",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Status: fiber.StatusInternalServerError, Type: dto.ErrTypeInternal, Message: "error interno",
		})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// RestaurantHandler administración de restaurantes (solo super-admin).
type RestaurantHandler struct {
	uc *usecase.RestaurantUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear restaurante (siembra las categorías por defecto)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestaurantRequest  true  "Datos del restaurante"
// @Success      201   {object}  dto.RestaurantResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar restaurantes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.RestaurantResponse
// @Router       /api/admin/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.List(c.Context(), GetPrincipal(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suspend godoc
// @Summary      Suspender un restaurante (su menú público deja de responder)
// @Tags         admin
// @Security     Bearer
// @Param        id   path  int  true  "ID del restaurante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/restaurants/{id}/suspend [post]
func (h *RestaurantHandler) Suspend(c *fiber.Ctx) error {
	return h.setStatus(c, entity.RestaurantSuspended)
}

// Activate godoc
// @Summary      Reactivar un restaurante suspendido
// @Tags         admin
// @Security     Bearer
// @Param        id   path  int  true  "ID del restaurante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/restaurants/{id}/activate [post]
func (h *RestaurantHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, entity.RestaurantActive)
}

func (h *RestaurantHandler) setStatus(c *fiber.Ctx, status string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.SetStatus(c.Context(), GetPrincipal(c), int64(id), status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

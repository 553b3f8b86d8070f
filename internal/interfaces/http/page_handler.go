package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

// PageHandler maneja las páginas estáticas del panel del dueño.
type PageHandler struct {
	uc *usecase.PageUseCase
}

// NewPageHandler construye el handler.
func NewPageHandler(uc *usecase.PageUseCase) *PageHandler {
	return &PageHandler{uc: uc}
}

// Create godoc
// @Summary      Crear página
// @Tags         pages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PageRequestBody  true  "Datos de la página"
// @Success      201   {object}  dto.PageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/panel/pages [post]
func (h *PageHandler) Create(c *fiber.Ctx) error {
	var in dto.PageRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener página
// @Tags         pages
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la página"
// @Success      200  {object}  dto.PageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/panel/pages/{id} [get]
func (h *PageHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.Get(c.Context(), GetScope(c), GetPrincipal(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar páginas
// @Tags         pages
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PageResponse
// @Router       /api/panel/pages [get]
func (h *PageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar página
// @Tags         pages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la página"
// @Param        body  body  dto.PageRequestBody  true  "Datos a actualizar"
// @Success      200   {object}  dto.PageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/panel/pages/{id} [put]
func (h *PageHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.PageRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetScope(c), GetPrincipal(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar página (soft delete)
// @Tags         pages
// @Security     Bearer
// @Param        id   path  int  true  "ID de la página"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/panel/pages/{id} [delete]
func (h *PageHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetScope(c), GetPrincipal(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

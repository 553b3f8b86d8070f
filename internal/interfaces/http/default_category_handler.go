package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

// DefaultCategoryHandler catálogo global de categorías por defecto (solo super-admin).
type DefaultCategoryHandler struct {
	uc *usecase.DefaultCategoryUseCase
}

// NewDefaultCategoryHandler construye el handler.
func NewDefaultCategoryHandler(uc *usecase.DefaultCategoryUseCase) *DefaultCategoryHandler {
	return &DefaultCategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías por defecto
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DefaultCategoryResponse
// @Router       /api/admin/default-categories [get]
func (h *DefaultCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría por defecto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DefaultCategoryRequest  true  "Datos de la plantilla"
// @Success      201   {object}  dto.DefaultCategoryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/default-categories [post]
func (h *DefaultCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.DefaultCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría por defecto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la plantilla"
// @Param        body  body  dto.DefaultCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DefaultCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/default-categories/{id} [put]
func (h *DefaultCategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.DefaultCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetPrincipal(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría por defecto
// @Tags         admin
// @Security     Bearer
// @Param        id   path  int  true  "ID de la plantilla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/default-categories/{id} [delete]
func (h *DefaultCategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

// MenuHandler lectura pública del menú. Sin auth, sin scope de tenant: el
// slug identifica al restaurante y el caso de uso solo expone lo aprobado.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Get godoc
// @Summary      Menú público de un restaurante
// @Tags         menu
// @Produce      json
// @Param        slug  path  string  true  "Slug del restaurante"
// @Success      200   {object}  dto.MenuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{slug} [get]
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return badRequest(c, "slug es requerido")
	}
	out, err := h.uc.Get(c.Context(), slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

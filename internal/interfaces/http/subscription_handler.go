package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

// SubscriptionHandler maneja la suscripción de la cuenta del dueño. Sus rutas
// están exentas del gate: la renovación tiene que ser alcanzable con la
// suscripción vencida.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Current godoc
// @Summary      Ver la suscripción vigente de la cuenta
// @Tags         subscription
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/panel/subscription [get]
func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Renew godoc
// @Summary      Renovar la suscripción de la cuenta
// @Tags         subscription
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RenewSubscriptionRequest  true  "Meses del período nuevo"
// @Success      201   {object}  dto.SubscriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/panel/subscription/renew [post]
func (h *SubscriptionHandler) Renew(c *fiber.Ctx) error {
	var in dto.RenewSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Renew(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

// QRCodeHandler maneja los códigos QR del panel del dueño.
type QRCodeHandler struct {
	uc *usecase.QRCodeUseCase
}

// NewQRCodeHandler construye el handler.
func NewQRCodeHandler(uc *usecase.QRCodeUseCase) *QRCodeHandler {
	return &QRCodeHandler{uc: uc}
}

// Create godoc
// @Summary      Generar código QR del menú público
// @Tags         qrcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQRCodeRequest  true  "Etiqueta del QR"
// @Success      201   {object}  dto.QRCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/panel/qrcodes [post]
func (h *QRCodeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQRCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar códigos QR
// @Tags         qrcodes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QRCodeResponse
// @Router       /api/panel/qrcodes [get]
func (h *QRCodeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar el PNG de un código QR
// @Tags         qrcodes
// @Security     Bearer
// @Produce      png
// @Param        id   path  int  true  "ID del QR"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/panel/qrcodes/{id}/png [get]
func (h *QRCodeHandler) Download(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	png, err := h.uc.PNG(c.Context(), GetScope(c), GetPrincipal(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Delete godoc
// @Summary      Eliminar código QR
// @Tags         qrcodes
// @Security     Bearer
// @Param        id   path  int  true  "ID del QR"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/panel/qrcodes/{id} [delete]
func (h *QRCodeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetScope(c), GetPrincipal(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

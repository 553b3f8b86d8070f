package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

// ApprovalHandler cola de aprobación de productos (solo super-admin).
// La revisión es cross-tenant: el caso de uso corre sin scope de tenant.
type ApprovalHandler struct {
	uc *usecase.ProductUseCase
}

// NewApprovalHandler construye el handler.
func NewApprovalHandler(uc *usecase.ProductUseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// ListPending godoc
// @Summary      Listar productos pendientes de aprobación (todos los tenants)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProductResponse
// @Router       /api/admin/approvals [get]
func (h *ApprovalHandler) ListPending(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.ListPendingApproval(c.Context(), GetPrincipal(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar un producto (PENDING_APPROVAL -> APPROVED)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.Approve(c.Context(), GetPrincipal(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar un producto (PENDING_APPROVAL -> REJECTED)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.Reject(c.Context(), GetPrincipal(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

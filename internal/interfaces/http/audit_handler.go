package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/audit"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
)

// AuditHandler visor del historial de auditoría (solo admin).
type AuditHandler struct {
	history *audit.History
}

func NewAuditHandler(history *audit.History) *AuditHandler {
	return &AuditHandler{history: history}
}

// List godoc
// @Summary      Historial de movimientos de stock
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        staff    query  string  false  "subcadena del username (sin distinguir mayúsculas)"
// @Param        product  query  string  false  "nombre del producto"
// @Param        limit    query  int     false  "máximo 200, por defecto 50"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {array}   dto.AuditRecordResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var q dto.AuditQuery
	if err := c.QueryParser(&q); err != nil {
		return validation(c, "parámetros de consulta inválidos")
	}
	list, err := h.history.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

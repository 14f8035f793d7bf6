package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/usecase"
)

// StaffHandler listado de empleados (solo admin).
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo 200, por defecto 50"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.StaffResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return validation(c, "parámetros de consulta inválidos")
	}
	list, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

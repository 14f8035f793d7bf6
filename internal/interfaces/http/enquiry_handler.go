package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/enquiry"
)

// EnquiryHandler consultas de empleados y bandeja de alertas.
type EnquiryHandler struct {
	store *enquiry.Store
}

func NewEnquiryHandler(store *enquiry.Store) *EnquiryHandler {
	return &EnquiryHandler{store: store}
}

// Create godoc
// @Summary      Enviar consulta de producto
// @Description  Guarda la consulta con una copia del nombre y email del empleado y avisa al buzón de alertas.
// @Tags         enquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StaffEnquiryRequest  true  "product, quantity, message"
// @Success      201   {object}  dto.EnquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/enquiries [post]
func (h *EnquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.StaffEnquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Product) == "" || strings.TrimSpace(in.Message) == "" || in.Quantity == nil {
		return validation(c, "product, quantity y message son requeridos")
	}
	e, err := h.store.RecordStaffEnquiry(c.UserContext(), GetUsername(c), enquiry.StaffEnquiryInput{
		Product:  in.Product,
		Quantity: *in.Quantity,
		Message:  in.Message,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToEnquiryResponse(e))
}

// List godoc
// @Summary      Alertas y consultas (solo admin)
// @Tags         enquiries
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo 200, por defecto 50"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.EnquiryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/enquiries [get]
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return validation(c, "parámetros de consulta inválidos")
	}
	list, err := h.store.ListAll(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

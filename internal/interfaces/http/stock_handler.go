package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
)

// StockHandler maneja las mutaciones y consultas de existencias.
// Las mutaciones aceptan peticiones anónimas; con sesión se registra el empleado.
type StockHandler struct {
	ledger *inventory.Ledger
	report *inventory.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *inventory.Ledger, report *inventory.ReportUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, report: report}
}

// List godoc
// @Summary      Listar existencias
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.ProductStockResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.ledger.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ProductStockResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductStockResponse(p))
	}
	return c.JSON(out)
}

// AddOrIncrease godoc
// @Summary      Alta de producto o entrada de stock
// @Description  Crea el producto si no existe (Add); si existe suma la cantidad (Increase).
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMutationRequest  true  "name, amount"
// @Success      200   {object}  dto.StockMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) AddOrIncrease(c *fiber.Ctx) error {
	return h.mutate(c, h.ledger.AddOrIncrease)
}

// Increase godoc
// @Summary      Entrada de stock sobre un producto existente
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMutationRequest  true  "name, amount"
// @Success      200   {object}  dto.StockMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/increase [post]
func (h *StockHandler) Increase(c *fiber.Ctx) error {
	return h.mutate(c, h.ledger.Increase)
}

// Decrease godoc
// @Summary      Salida de stock
// @Description  Si la cantidad resultante queda bajo la marca de stock bajo y hay sesión, se guarda una alerta y se notifica por correo.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMutationRequest  true  "name, amount"
// @Success      200   {object}  dto.StockMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/decrease [post]
func (h *StockHandler) Decrease(c *fiber.Ctx) error {
	return h.mutate(c, h.ledger.Decrease)
}

// Report godoc
// @Summary      Reporte PDF de existencias (solo admin)
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.report.Generate(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte-stock.pdf"`)
	return c.Send(pdf)
}

type mutationFunc func(ctx context.Context, in inventory.MutationInput) (*inventory.MutationResult, error)

func (h *StockHandler) mutate(c *fiber.Ctx, fn mutationFunc) error {
	var in dto.StockMutationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Name) == "" || in.Amount == nil {
		return validation(c, "name y amount son requeridos")
	}
	if in.Amount.IsNegative() {
		return validation(c, "amount no puede ser negativo")
	}
	res, err := fn(c.UserContext(), inventory.MutationInput{
		Name:   in.Name,
		Amount: *in.Amount,
		Staff:  GetUsername(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	out := dto.StockMutationResponse{
		Product:   dto.ToProductStockResponse(res.Product),
		Operation: res.Operation,
	}
	if res.Alert != nil {
		out.AlertFired = true
		out.Severity = res.Alert.Severity
	}
	return c.JSON(out)
}

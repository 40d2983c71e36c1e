package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc     *usecase.SaleUseCase
	errors *ErrorMapper
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, errs *ErrorMapper) *SaleHandler {
	return &SaleHandler{uc: uc, errors: errs}
}

// Create godoc
// @Summary      Registrar venta
// @Description  subTotal y totalAmount se calculan si no vienen en la petición.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Create(c.UserContext(), in.ToInput()); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusCreated, "Venta creada satisfactoriamente")
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"  default(0)
// @Param        size  query  int  false  "Tamaño"            default(20)
// @Success      200   {array}   dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/all [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), page.Page, page.Size)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	total, err := h.uc.Count(c.UserContext())
	if err != nil {
		return h.errors.Respond(c, err)
	}
	setPageHeaders(c, dto.PageResponse{Page: page.Page, Size: page.Size, Total: total})
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Query("id"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// ListByStatus godoc
// @Summary      Listar ventas por estatus
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  true  "Estatus"
// @Success      200  {array}   dto.SaleResponse
// @Router       /api/sales/status [get]
func (h *SaleHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.UserContext(), c.Query("status"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar ventas por texto
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        textSearch  query  string  true  "Método de pago, cliente o estatus"
// @Success      200  {array}   dto.SaleResponse
// @Router       /api/sales/search [get]
func (h *SaleHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("textSearch"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante de venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"venta-%s.pdf\"", id))
	return c.Send(pdf)
}

// Update godoc
// @Summary      Actualizar estatus de la venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Nuevo estatus"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(c.UserContext(), c.Params("id"), in.Status); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusOK, "Venta actualizada satisfactoriamente")
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusOK, "Venta eliminada satisfactoriamente")
}

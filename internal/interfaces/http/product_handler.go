package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del inventario.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	errors *ErrorMapper
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, errs *ErrorMapper) *ProductHandler {
	return &ProductHandler{uc: uc, errors: errs}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Create(c.UserContext(), in.ToInput()); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusCreated, "Producto creado satisfactoriamente")
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"  default(0)
// @Param        size  query  int  false  "Tamaño"            default(20)
// @Success      200   {array}   dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/all [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Query("id"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar productos por categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true  "BLANCOS | ALIMENTOS | ELECTRÓNICOS"
// @Success      200  {array}   dto.ProductResponse
// @Router       /api/products/category [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Query("category"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por texto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        textSearch  query  string  true  "Texto a buscar"
// @Success      200  {array}   dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("textSearch"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos completos del producto"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(c.UserContext(), c.Params("id"), in.ToInput()); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusOK, "Producto actualizado satisfactoriamente")
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusOK, "Producto eliminado satisfactoriamente")
}

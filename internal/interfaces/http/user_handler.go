package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/application/usecase"
)

// UserHandler maneja empleados y proveedores.
type UserHandler struct {
	uc     *usecase.UserUseCase
	errors *ErrorMapper
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, errs *ErrorMapper) *UserHandler {
	return &UserHandler{uc: uc, errors: errs}
}

// CreateEmployee godoc
// @Summary      Registrar empleado
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRequest  true  "Datos del empleado (employeeData requerido)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/users/employees [post]
func (h *UserHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.CreateEmployee(c.UserContext(), in.ToInput()); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusCreated, "Empleado creado satisfactoriamente")
}

// CreateProvider godoc
// @Summary      Registrar proveedor
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRequest  true  "Datos del proveedor (providerData requerido)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/providers [post]
func (h *UserHandler) CreateProvider(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.CreateProvider(c.UserContext(), in.ToInput()); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusCreated, "Proveedor creado satisfactoriamente")
}

// List godoc
// @Summary      Listar usuarios por tipo
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página (desde 0)"  default(0)
// @Param        size       query  int     false  "Tamaño"            default(20)
// @Param        type_user  query  string  false  "employee | provider"  default(employee)
// @Success      200  {array}   dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/all [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), page.Page, page.Size, c.Query("type_user"))
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
// @Summary      Obtener usuario por id
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Query("id"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// GetByEmail godoc
// @Summary      Obtener usuario por correo
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        email  query  string  true  "Correo"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/email [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	out, err := h.uc.GetByEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// ListByStatus godoc
// @Summary      Listar usuarios por estatus
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  true   "Estatus"
// @Param        type_user  query  string  false  "employee | provider"
// @Success      200  {array}   dto.UserResponse
// @Router       /api/users/status [get]
func (h *UserHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.UserContext(), c.Query("status"), c.Query("type_user"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// ListByDepartment godoc
// @Summary      Listar empleados por departamento
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        department  query  string  true  "Departamento"
// @Success      200  {array}   dto.UserResponse
// @Router       /api/users/department [get]
func (h *UserHandler) ListByDepartment(c *fiber.Ctx) error {
	out, err := h.uc.ListByDepartment(c.UserContext(), c.Query("department"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// ListByService godoc
// @Summary      Listar proveedores por tipo de servicio
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        service  query  string  true  "Tipo de servicio"
// @Success      200  {array}   dto.UserResponse
// @Router       /api/users/service [get]
func (h *UserHandler) ListByService(c *fiber.Ctx) error {
	out, err := h.uc.ListByService(c.UserContext(), c.Query("service"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empleados por texto
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        textSearch  query  string  true  "Texto a buscar en nombre, apellidos o correo"
// @Success      200  {array}   dto.UserResponse
// @Router       /api/users/search [get]
func (h *UserHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchEmployees(c.UserContext(), c.Query("textSearch"))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del usuario"
// @Param        body  body  dto.UserRequest  true  "Datos completos del usuario"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(c.UserContext(), c.Params("id"), in.ToInput()); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusOK, "Usuario actualizado satisfactoriamente")
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.errors.Respond(c, err)
	}
	return message(c, fiber.StatusOK, "Usuario eliminado satisfactoriamente")
}

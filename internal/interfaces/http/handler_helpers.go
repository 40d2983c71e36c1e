package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
)

// Encabezados de paginación de los listados.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderPage       = "X-Page"
	HeaderPageSize   = "X-Page-Size"
)

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page: c.QueryInt("page", dto.DefaultPage),
		Size: c.QueryInt("size", dto.DefaultPageSize),
	}.Normalize()
}

func setPageHeaders(c *fiber.Ctx, page dto.PageResponse) {
	c.Set(HeaderTotalCount, strconv.FormatInt(page.Total, 10))
	c.Set(HeaderPage, strconv.Itoa(page.Page))
	c.Set(HeaderPageSize, strconv.Itoa(page.Size))
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.MessageResponse{Message: msg})
}

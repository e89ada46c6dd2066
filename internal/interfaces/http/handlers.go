package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate instancia compartida del validador de DTOs.
var validate = validator.New()

// parseID convierte el parámetro de ruta :id a clave subrogada.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// pageParams lee skip/limit con sus valores por defecto. limit se acota a
// 100 para que una página arbitrariamente grande no tumbe el proceso.
func pageParams(c *fiber.Ctx) (skip, limit int) {
	skip = c.QueryInt("skip", 0)
	limit = c.QueryInt("limit", 10)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit
}

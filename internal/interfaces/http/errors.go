package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
)

// errorStatus código HTTP y código de error de cada tipo de error de dominio.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrValidation:      {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrConflict:        {fiber.StatusBadRequest, "CONFLICT"},
	domain.ErrNotFound:        {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrUnauthenticated: {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:       {fiber.StatusForbidden, "FORBIDDEN"},
	domain.ErrUnsupportedFile: {fiber.StatusBadRequest, "UNSUPPORTED_FILE"},
	domain.ErrStorage:         {fiber.StatusInternalServerError, "STORAGE"},
	domain.ErrProcessing:      {fiber.StatusInternalServerError, "PROCESSING"},
}

// writeError traduce un error de caso de uso a la respuesta HTTP. Los errores sin tipo de
// dominio se responden como 500 INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	st, ok := errorStatus[kind]
	if !ok {
		st.status, st.code = fiber.StatusInternalServerError, "INTERNAL"
	}
	if st.status >= fiber.StatusInternalServerError {
		// Para el log de peticiones.
		c.Locals(LocalError, err)
	}
	return c.Status(st.status).JSON(dto.ErrorResponse{Code: st.code, Message: domain.MessageOf(err)})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// paramID lee el parámetro :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return int64(id), nil
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/pkg/jwt"
)

// Locals keys para la identidad del trabajador y el error de la petición.
const (
	LocalPersonID = "person_id"
	LocalEmail    = "email"
	LocalError    = "error"
)

// Mensajes del middleware de auth.
const (
	MsgUnauthorized = "No autorizado"
	MsgForbidden    = "no tienes acceso a este recurso"
)

// AuthMiddleware valida el Bearer Token JWT y deja el id de persona y el email en c.Locals.
// Sin token responde 401; con un token inválido, manipulado o expirado responde 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: MsgUnauthorized})
		}
		scheme, tokenString, _ := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: MsgUnauthorized})
		}
		if !strings.EqualFold(scheme, "Bearer") {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: MsgForbidden})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: MsgForbidden})
		}
		c.Locals(LocalPersonID, id.PersonID)
		c.Locals(LocalEmail, id.Email)
		return c.Next()
	}
}

// GetPersonID devuelve el id de persona del contexto (después del middleware de auth).
func GetPersonID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalPersonID).(int64)
	return v
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalEmail).(string)
	return v
}

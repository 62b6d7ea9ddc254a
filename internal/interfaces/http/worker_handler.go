package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/auth"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
)

// WorkerHandler maneja registro y login de trabajadores.
type WorkerHandler struct {
	uc *auth.WorkerUseCase
}

// NewWorkerHandler construye el handler de trabajadores.
func NewWorkerHandler(uc *auth.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar trabajador
// @Tags         trabajador
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterWorkerRequest  true  "Datos personales y credenciales"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/register-trabajador [post]
func (h *WorkerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         trabajador
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/login-trabajador [post]
func (h *WorkerHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

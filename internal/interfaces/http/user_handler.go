package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para cuentas de usuario.
type UserHandler struct {
	uc *usecase.AccountUseCase
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.AccountUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuenta de usuario (devuelve la api key una única vez)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string  true  "API key (rol admin)"
// @Param        body  body  dto.CreateUserRequest  true  "Datos de la cuenta"
// @Success      200   {object}  dto.CreateUserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateUser(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// IssueKey godoc
// @Summary      Reemitir api key por email (invalida la anterior de inmediato)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string  true  "API key (rol admin)"
// @Param        body  body  dto.IssueKeyRequest  true  "Email de la cuenta"
// @Success      200   {object}  dto.IssueKeyResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/issue-key [post]
func (h *UserHandler) IssueKey(c *fiber.Ctx) error {
	var in dto.IssueKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.IssueKey(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

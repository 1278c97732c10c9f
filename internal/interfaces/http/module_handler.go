package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/application/usecase"
)

// ModuleHandler maneja las peticiones HTTP para toggles de módulos.
type ModuleHandler struct {
	uc *usecase.ModuleUseCase
}

// NewModuleHandler construye el handler inyectando el caso de uso.
func NewModuleHandler(uc *usecase.ModuleUseCase) *ModuleHandler {
	return &ModuleHandler{uc: uc}
}

// Toggle godoc
// @Summary      Registrar toggle de módulo (inserta un evento nuevo, no actualiza)
// @Tags         modules
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string  true  "API key (rol admin o manager)"
// @Param        body  body  dto.ToggleModuleRequest  true  "Toggle"
// @Success      200   {object}  dto.CreatedResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/modules/toggle [post]
func (h *ModuleHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Toggle(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

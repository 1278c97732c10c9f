package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mini-erp/internal/application/usecase"
)

// SystemHandler endpoints públicos de liveness y diagnóstico.
type SystemHandler struct {
	diag *usecase.DiagnosticsUseCase
}

// NewSystemHandler construye el handler de sistema.
func NewSystemHandler(diag *usecase.DiagnosticsUseCase) *SystemHandler {
	return &SystemHandler{diag: diag}
}

// Root godoc
// @Summary      Liveness
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Global Management Mini-ERP Backend Running"})
}

// Hello godoc
// @Summary      Liveness de la API
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/hello [get]
func (h *SystemHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the backend API!"})
}

// Test godoc
// @Summary      Diagnóstico del document store (nunca falla, degrada a texto)
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.DiagnosticsResponse
// @Router       /test [get]
func (h *SystemHandler) Test(c *fiber.Ctx) error {
	return c.JSON(h.diag.Report(c.Context()))
}

package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mini-erp/internal/application/auth"
	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain"
)

// HeaderAPIKey header con la credencial del caller.
const HeaderAPIKey = "X-API-Key"

// Locals key para el AuthContext en Fiber.
const localAuthContext = "auth_context"

// authenticator es el contrato mínimo que necesita el middleware para resolver
// la api key. Lo implementa *auth.AuthUseCase; la interfaz permite fakes en tests.
type authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (*auth.AuthContext, error)
}

// APIKeyMiddleware resuelve el header X-API-Key a un AuthContext en c.Locals.
//
// Comportamiento:
//   - Sin header            → 401 MISSING_API_KEY.
//   - Llave sin cuenta      → 401 INVALID_API_KEY.
//   - Store caído           → 503 STORE_UNAVAILABLE (no es un 401: la credencial no pudo evaluarse).
func APIKeyMiddleware(svc authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderAPIKey)
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_API_KEY", Message: "header " + HeaderAPIKey + " requerido"})
		}
		actx, err := svc.Authenticate(c.Context(), key)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_API_KEY", Message: "api key no reconocida"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "no se pudo verificar la credencial, intente más tarde"})
		}
		c.Locals(localAuthContext, actx)
		return c.Next()
	}
}

// RequirePermission autoriza según la tabla rolePolicy. Debe usarse DESPUÉS de
// APIKeyMiddleware (necesita el AuthContext en locals).
func RequirePermission(p Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actx := GetAuthContext(c)
		if actx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "credencial no resuelta"})
		}
		if !actx.HasRole(rolePolicy[p]...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol '" + actx.Role + "' no tiene permiso para esta operación"})
		}
		return c.Next()
	}
}

// GetAuthContext devuelve el AuthContext del caller (después del middleware de auth).
func GetAuthContext(c *fiber.Ctx) *auth.AuthContext {
	v := c.Locals(localAuthContext)
	if v == nil {
		return nil
	}
	actx, _ := v.(*auth.AuthContext)
	return actx
}

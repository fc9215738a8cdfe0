package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// LocalIdentity key del fiber.Ctx.Locals donde queda la identidad de la sesión.
const LocalIdentity = "identity"

// BearerToken extrae el token del header Authorization, quitando el prefijo
// literal "Bearer " si está presente.
func BearerToken(c *fiber.Ctx) string {
	return strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
}

// AuthMiddleware resuelve la identidad del token de sesión y la deja en
// c.Locals. Token ausente, desconocido o revocado -> 401 sin más procesamiento.
func AuthMiddleware(sessions auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := sessions.Lookup(BearerToken(c))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "autenticación requerida",
			})
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después de AuthMiddleware).
func GetIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	identity, ok := c.Locals(LocalIdentity).(entity.Identity)
	return identity, ok
}

// RequireResource verifica contra la matriz de permisos que el rol de la
// sesión pueda operar el recurso. Debe usarse DESPUÉS de AuthMiddleware.
// Rol sin permiso (o desconocido) -> 403.
func RequireResource(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "autenticación requerida",
			})
		}
		if !auth.Allowed(identity.Role, resource) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Response{
				Success: false,
				Message: "acceso denegado",
			})
		}
		return c.Next()
	}
}

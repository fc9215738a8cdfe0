package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	apphttp "github.com/jhoicas/chatbot-admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildProtectedApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para resolver el token de sesión
//   - RequireResource para autorizar contra la matriz de permisos
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildProtectedApp(sessions auth.SessionStore, resource string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(sessions),
		apphttp.RequireResource(resource),
		func(c *fiber.Ctx) error {
			identity, _ := apphttp.GetIdentity(c)
			return c.JSON(fiber.Map{"ok": true, "role": identity.Role})
		},
	)
	return app
}

// sessionForRole crea una sesión viva con el rol indicado y devuelve el header.
func sessionForRole(t *testing.T, sessions auth.SessionStore, role string) string {
	t.Helper()
	token, err := sessions.Create(entity.Identity{UserID: 1, Username: "alguien", Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — autenticación
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization → HTTP 401.
func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	sessions := auth.NewMemorySessionStore()
	app := buildProtectedApp(sessions, auth.ResourceProducts)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "autenticación requerida")
}

// Caso 2: Token que no corresponde a ninguna sesión viva → HTTP 401.
func TestAuthMiddleware_TokenDesconocido_Retorna401(t *testing.T) {
	sessions := auth.NewMemorySessionStore()
	app := buildProtectedApp(sessions, auth.ResourceProducts)

	resp := doRequest(t, app, "Bearer 0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: Token revocado → HTTP 401 aunque antes fuera válido.
func TestAuthMiddleware_TokenRevocado_Retorna401(t *testing.T) {
	sessions := auth.NewMemorySessionStore()
	app := buildProtectedApp(sessions, auth.ResourceProducts)

	header := sessionForRole(t, sessions, entity.RoleProductAdmin)

	resp := doRequest(t, app, header)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	sessions.Revoke(header[len("Bearer "):])

	resp = doRequest(t, app, header)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireResource — autorización
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: Rol con permiso sobre el recurso → HTTP 200 y la identidad en locals.
func TestRequireResource_RolPermitido(t *testing.T) {
	sessions := auth.NewMemorySessionStore()
	app := buildProtectedApp(sessions, auth.ResourceProducts)

	resp := doRequest(t, app, sessionForRole(t, sessions, entity.RoleProductAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleProductAdmin, body["role"])
}

// Caso 5: Sesión válida pero rol fuera de la matriz para el recurso → HTTP 403.
func TestRequireResource_RolSinPermiso_Retorna403(t *testing.T) {
	sessions := auth.NewMemorySessionStore()
	app := buildProtectedApp(sessions, auth.ResourceUsers)

	// Order Admin solo opera pedidos; users le está vedado.
	resp := doRequest(t, app, sessionForRole(t, sessions, entity.RoleOrderAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "acceso denegado")
}

// Caso 5b: End User autenticado tampoco accede a recursos administrativos.
func TestRequireResource_EndUserBloqueado(t *testing.T) {
	sessions := auth.NewMemorySessionStore()
	app := buildProtectedApp(sessions, auth.ResourceOrders)

	resp := doRequest(t, app, sessionForRole(t, sessions, entity.RoleEndUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 6: System Admin pasa en todos los recursos.
func TestRequireResource_SystemAdminAccedeATodo(t *testing.T) {
	resources := []string{
		auth.ResourceRoles, auth.ResourceUsers, auth.ResourceProducts,
		auth.ResourceOrders, auth.ResourceFAQ, auth.ResourceUnanswered,
	}
	for _, resource := range resources {
		sessions := auth.NewMemorySessionStore()
		app := buildProtectedApp(sessions, resource)

		resp := doRequest(t, app, sessionForRole(t, sessions, entity.RoleSystemAdmin))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "recurso %q", resource)
		resp.Body.Close()
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// AuthHandler maneja login (admin y usuario final) y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login administrativo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, entity.AdminRoles)
}

// UserLogin godoc
// @Summary      Login de usuario final (consumido por el chatbot)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/user/login [post]
func (h *AuthHandler) UserLogin(c *fiber.Ctx) error {
	return h.login(c, []string{entity.RoleEndUser})
}

func (h *AuthHandler) login(c *fiber.Ctx, allowedRoles []string) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{Success: false, Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{Success: false, Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in, allowedRoles)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{Success: false, Message: "credenciales inválidas"})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Revocar un token desconocido también es éxito: logout es incondicional.
	h.uc.Logout(BearerToken(c))
	return c.JSON(dto.Response{Success: true})
}

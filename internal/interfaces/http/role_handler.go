package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP para roles (solo System Admin).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.Response{Success: true, Data: h.uc.List(c.Context())})
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "role_name"
// @Success      200   {object}  dto.MutationResult
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	return c.JSON(h.uc.Create(c.Context(), in))
}

// Update godoc
// @Summary      Renombrar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del rol"
// @Param        body  body  dto.UpdateRoleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MutationResult
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	return c.JSON(h.uc.Update(c.Context(), id, in))
}

// Delete godoc
// @Summary      Eliminar rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del rol"
// @Success      200  {object}  dto.MutationResult
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	return c.JSON(h.uc.Delete(c.Context(), id))
}

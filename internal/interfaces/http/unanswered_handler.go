package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/application/usecase"
)

// UnansweredHandler maneja las peticiones HTTP para preguntas sin responder (protegido).
type UnansweredHandler struct {
	uc *usecase.UnansweredUseCase
}

// NewUnansweredHandler construye el handler.
func NewUnansweredHandler(uc *usecase.UnansweredUseCase) *UnansweredHandler {
	return &UnansweredHandler{uc: uc}
}

// List godoc
// @Summary      Listar preguntas sin responder
// @Tags         unanswered
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/unanswered [get]
func (h *UnansweredHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.Response{Success: true, Data: h.uc.List(c.Context())})
}

// Create godoc
// @Summary      Registrar pregunta sin responder
// @Tags         unanswered
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnansweredRequest  true  "question"
// @Success      200   {object}  dto.MutationResult
// @Router       /api/unanswered [post]
func (h *UnansweredHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnansweredRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	return c.JSON(h.uc.Create(c.Context(), in))
}

// Update godoc
// @Summary      Actualizar estado de una pregunta
// @Tags         unanswered
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la pregunta"
// @Param        body  body  dto.UpdateUnansweredRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MutationResult
// @Router       /api/unanswered/{id} [put]
func (h *UnansweredHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	var in dto.UpdateUnansweredRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	return c.JSON(h.uc.Update(c.Context(), id, in))
}

// Delete godoc
// @Summary      Eliminar pregunta sin responder
// @Tags         unanswered
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la pregunta"
// @Success      200  {object}  dto.MutationResult
// @Router       /api/unanswered/{id} [delete]
func (h *UnansweredHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	return c.JSON(h.uc.Delete(c.Context(), id))
}

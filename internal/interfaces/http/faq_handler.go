package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/application/usecase"
)

// FAQHandler maneja las peticiones HTTP para preguntas frecuentes (protegido).
type FAQHandler struct {
	uc *usecase.FAQUseCase
}

// NewFAQHandler construye el handler.
func NewFAQHandler(uc *usecase.FAQUseCase) *FAQHandler {
	return &FAQHandler{uc: uc}
}

// List godoc
// @Summary      Listar FAQs
// @Tags         faq
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/faq [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.Response{Success: true, Data: h.uc.List(c.Context())})
}

// Create godoc
// @Summary      Crear FAQ
// @Tags         faq
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFAQRequest  true  "question y answer"
// @Success      200   {object}  dto.MutationResult
// @Router       /api/faq [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	return c.JSON(h.uc.Create(c.Context(), in))
}

// Update godoc
// @Summary      Actualizar FAQ (campos parciales)
// @Tags         faq
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la FAQ"
// @Param        body  body  dto.UpdateFAQRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MutationResult
// @Router       /api/faq/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	var in dto.UpdateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	return c.JSON(h.uc.Update(c.Context(), id, in))
}

// Delete godoc
// @Summary      Eliminar FAQ
// @Tags         faq
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la FAQ"
// @Success      200  {object}  dto.MutationResult
// @Router       /api/faq/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	return c.JSON(h.uc.Delete(c.Context(), id))
}

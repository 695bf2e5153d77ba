package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tpv-panel-api/internal/application/dto"
	"github.com/jhoicas/tpv-panel-api/internal/application/usecase"
	"github.com/jhoicas/tpv-panel-api/internal/domain"
)

// HelpHandler expone el centro de ayuda.
type HelpHandler struct {
	uc *usecase.HelpUseCase
}

// NewHelpHandler construye el handler.
func NewHelpHandler(uc *usecase.HelpUseCase) *HelpHandler {
	return &HelpHandler{uc: uc}
}

// Categories godoc
// @Summary      Categorías del centro de ayuda
// @Tags         help
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.HelpCategoryDTO
// @Router       /api/help/categories [get]
func (h *HelpHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// View godoc
// @Summary      Preguntas frecuentes filtradas
// @Description  Aplica categoría, búsqueda (sin distinguir mayúsculas ni tildes) y expansión. Una categoría desconocida conserva la de por defecto.
// @Tags         help
// @Produce      json
// @Security     BearerAuth
// @Param        category  query  string  false  "Categoría activa"  default(tpv)
// @Param        q         query  string  false  "Texto de búsqueda"
// @Param        expanded  query  int     false  "Pregunta expandida actualmente"
// @Param        toggle    query  int     false  "Pregunta pulsada"
// @Success      200  {object}  dto.HelpViewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/help/faqs [get]
func (h *HelpHandler) View(c *fiber.Ctx) error {
	expanded, err := optionalInt(c, "expanded")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expanded debe ser entero"})
	}
	toggle, err := optionalInt(c, "toggle")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "toggle debe ser entero"})
	}
	return c.JSON(h.uc.View(dto.HelpViewQuery{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Expanded: expanded,
		Toggle:   toggle,
	}))
}

// GuidePDF godoc
// @Summary      Guía imprimible
// @Description  PDF con las preguntas de la categoría que coinciden con la búsqueda.
// @Tags         help
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        category  query  string  false  "Categoría"  default(tpv)
// @Param        q         query  string  false  "Texto de búsqueda"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/help/guide.pdf [get]
func (h *HelpHandler) GuidePDF(c *fiber.Ctx) error {
	category := c.Query("category")
	doc, err := h.uc.GuidePDF(c.UserContext(), category, c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CATEGORY_NOT_FOUND", Message: "la categoría no existe"})
		}
		return internalError(c, err)
	}
	if category == "" {
		category = "ayuda"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="guia-`+category+`.pdf"`)
	return c.Send(doc)
}

// optionalInt devuelve nil si el parámetro no viene.
func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

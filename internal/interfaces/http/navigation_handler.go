package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tpv-panel-api/internal/application/usecase"
)

// NavigationHandler sirve la barra lateral.
type NavigationHandler struct {
	uc *usecase.NavigationUseCase
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(uc *usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{uc: uc}
}

// Get godoc
// @Summary      Barra lateral
// @Description  Secciones visibles según rol y módulos activos, con la entrada de la ruta actual marcada.
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        path       query  string  false  "Ruta actual del panel"  default(/)
// @Param        collapsed  query  bool    false  "Barra contraída"
// @Param        toggle     query  string  false  "Sección a abrir/cerrar"
// @Success      200  {object}  dto.NavigationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Sidebar(c.UserContext(), usecase.NavigationQuery{
		Role:          GetRole(c),
		CompanyID:     GetCompanyID(c),
		Path:          c.Query("path", "/"),
		Collapsed:     c.QueryBool("collapsed", false),
		ToggleSection: c.Query("toggle"),
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

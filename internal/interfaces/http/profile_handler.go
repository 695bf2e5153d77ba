package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tpv-panel-api/internal/application/dto"
	"github.com/jhoicas/tpv-panel-api/internal/application/usecase"
	"github.com/jhoicas/tpv-panel-api/internal/domain"
)

const maxProfileField = 120

// ProfileHandler expone la cabecera del panel y la edición del perfil.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Header godoc
// @Summary      Datos de la cabecera
// @Description  Nombre visible resuelto (perfil, nombre de cajero, proveedor de auth, email), avatar, rol y menú de usuario.
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.HeaderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me/header [get]
func (h *ProfileHandler) Header(c *fiber.Ctx) error {
	out, err := h.uc.GetHeader(c.UserContext(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar perfil
// @Tags         me
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "nombre, nombre_cajero, avatar (todos opcionales)"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/me/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if tooLong(in.Nombre) || tooLong(in.NombreCajero) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y nombre_cajero admiten hasta 120 caracteres"})
	}
	if in.Avatar != nil && *in.Avatar != "" {
		if u, err := url.ParseRequestURI(*in.Avatar); err != nil || u.Host == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "avatar debe ser una URL absoluta"})
		}
	}

	out, err := h.uc.UpdateProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

func tooLong(s *string) bool {
	return s != nil && len([]rune(*s)) > maxProfileField
}

package dto

// UserMenuItemDTO opción del menú de usuario de la cabecera.
type UserMenuItemDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// HeaderResponse respuesta de GET /api/me/header.
type HeaderResponse struct {
	DisplayName string            `json:"display_name"`
	Email       string            `json:"email"`
	Avatar      string            `json:"avatar,omitempty"`
	Role        string            `json:"role"`
	RoleLabel   string            `json:"role_label"`
	Menu        []UserMenuItemDTO `json:"menu"`
}

// UpdateProfileRequest entrada de PUT /api/me/profile. Los campos nil no se modifican.
type UpdateProfileRequest struct {
	Nombre       *string `json:"nombre" validate:"omitempty,max=120"`
	NombreCajero *string `json:"nombre_cajero" validate:"omitempty,max=120"`
	Avatar       *string `json:"avatar" validate:"omitempty,url"`
}

// ProfileResponse documento de perfil tal como quedó guardado.
type ProfileResponse struct {
	Nombre       string `json:"nombre"`
	NombreCajero string `json:"nombre_cajero"`
	Avatar       string `json:"avatar"`
	DisplayName  string `json:"display_name"`
}

package dto

// NavItemDTO entrada de la barra lateral.
type NavItemDTO struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// NavSectionDTO sección de la barra lateral.
type NavSectionDTO struct {
	Key   string       `json:"key"`
	Title string       `json:"title"`
	Open  bool         `json:"open"`
	Items []NavItemDTO `json:"items"`
}

// NavigationResponse respuesta de GET /api/navigation.
type NavigationResponse struct {
	Collapsed bool            `json:"collapsed"`
	ActiveKey string          `json:"active_key"`
	Sections  []NavSectionDTO `json:"sections"`
}

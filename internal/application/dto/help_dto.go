package dto

// HelpCategoryDTO pestaña de categoría del centro de ayuda.
type HelpCategoryDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EntryCount int    `json:"entry_count"`
}

// HelpViewQuery estado solicitado de la página de ayuda (query string).
// Toggle, si viene, se aplica después de categoría y búsqueda.
type HelpViewQuery struct {
	Category string
	Search   string
	Expanded *int
	Toggle   *int
}

// HelpEntryDTO pregunta visible con su estado de expansión.
type HelpEntryDTO struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Expanded bool   `json:"expanded"`
}

// HelpViewResponse respuesta de GET /api/help/faqs.
type HelpViewResponse struct {
	Categories     []HelpCategoryDTO `json:"categories"`
	ActiveCategory string            `json:"active_category"`
	Search         string            `json:"search"`
	ExpandedID     *int              `json:"expanded_id"`
	Entries        []HelpEntryDTO    `json:"entries"`
	Total          int               `json:"total"`
}

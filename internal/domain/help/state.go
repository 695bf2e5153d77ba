package help

// DefaultCategoryID es la categoría que se abre al entrar al centro de ayuda.
const DefaultCategoryID = "tpv"

// FilterState es el estado de la página de ayuda. Es un valor inmutable: los
// métodos devuelven un estado nuevo y nunca modifican el receptor.
//
// Categoría, búsqueda y pregunta expandida son independientes: cambiar de
// categoría no limpia la búsqueda ni cierra la pregunta abierta.
type FilterState struct {
	ActiveCategoryID string
	SearchTerm       string
	ExpandedEntryID  *int
}

// NewFilterState crea el estado inicial sobre categoryID, o sobre la primera
// categoría de kb si categoryID no existe.
func NewFilterState(kb *KnowledgeBase, categoryID string) FilterState {
	if !kb.Has(categoryID) {
		categoryID = ""
		if cats := kb.Categories(); len(cats) > 0 {
			categoryID = cats[0].ID
		}
	}
	return FilterState{ActiveCategoryID: categoryID}
}

// SelectCategory activa otra categoría. Un id desconocido deja el estado igual.
func (s FilterState) SelectCategory(kb *KnowledgeBase, categoryID string) FilterState {
	if !kb.Has(categoryID) {
		return s.clone()
	}
	next := s.clone()
	next.ActiveCategoryID = categoryID
	return next
}

// SetSearch reemplaza el texto de búsqueda.
func (s FilterState) SetSearch(term string) FilterState {
	next := s.clone()
	next.SearchTerm = term
	return next
}

// Toggle abre la pregunta pulsada o la cierra si ya estaba abierta.
func (s FilterState) Toggle(entryID int) FilterState {
	next := s.clone()
	next.ExpandedEntryID = ToggleExpanded(s.ExpandedEntryID, entryID)
	return next
}

// Visible aplica FilterFAQs con el estado actual.
func (s FilterState) Visible(kb *KnowledgeBase) []Entry {
	return FilterFAQs(kb, s.ActiveCategoryID, s.SearchTerm)
}

// IsExpanded informa si la pregunta está abierta.
func (s FilterState) IsExpanded(entryID int) bool {
	return s.ExpandedEntryID != nil && *s.ExpandedEntryID == entryID
}

func (s FilterState) clone() FilterState {
	next := s
	if s.ExpandedEntryID != nil {
		id := *s.ExpandedEntryID
		next.ExpandedEntryID = &id
	}
	return next
}

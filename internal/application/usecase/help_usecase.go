package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/tpv-panel-api/internal/application/dto"
	"github.com/jhoicas/tpv-panel-api/internal/application/ports"
	"github.com/jhoicas/tpv-panel-api/internal/domain"
	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

// HelpUseCase expone el centro de ayuda sobre una base de conocimiento fija.
type HelpUseCase struct {
	kb              *help.KnowledgeBase
	defaultCategory string
	renderer        ports.HelpGuideRenderer
}

// NewHelpUseCase construye el caso de uso. renderer puede ser nil si no se exporta PDF.
func NewHelpUseCase(kb *help.KnowledgeBase, defaultCategory string, renderer ports.HelpGuideRenderer) *HelpUseCase {
	if defaultCategory == "" {
		defaultCategory = help.DefaultCategoryID
	}
	return &HelpUseCase{kb: kb, defaultCategory: defaultCategory, renderer: renderer}
}

// Categories devuelve las pestañas del centro de ayuda en orden.
func (uc *HelpUseCase) Categories() []dto.HelpCategoryDTO {
	cats := uc.kb.Categories()
	out := make([]dto.HelpCategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.HelpCategoryDTO{ID: c.ID, Name: c.DisplayName, EntryCount: len(c.Entries)})
	}
	return out
}

// View reconstruye el estado pedido (categoría → búsqueda → expandida → toggle)
// y devuelve las preguntas visibles.
func (uc *HelpUseCase) View(q dto.HelpViewQuery) *dto.HelpViewResponse {
	state := help.NewFilterState(uc.kb, uc.defaultCategory)
	if q.Category != "" {
		state = state.SelectCategory(uc.kb, q.Category)
	}
	state = state.SetSearch(q.Search)
	if q.Expanded != nil {
		state = state.Toggle(*q.Expanded)
	}
	if q.Toggle != nil {
		state = state.Toggle(*q.Toggle)
	}

	visible := state.Visible(uc.kb)
	entries := make([]dto.HelpEntryDTO, 0, len(visible))
	for _, e := range visible {
		entries = append(entries, dto.HelpEntryDTO{
			ID:       e.ID,
			Question: e.Question,
			Answer:   e.Answer,
			Expanded: state.IsExpanded(e.ID),
		})
	}
	return &dto.HelpViewResponse{
		Categories:     uc.Categories(),
		ActiveCategory: state.ActiveCategoryID,
		Search:         state.SearchTerm,
		ExpandedID:     state.ExpandedEntryID,
		Entries:        entries,
		Total:          len(entries),
	}
}

// GuidePDF genera la guía imprimible de una categoría con el filtro aplicado.
// Devuelve ErrNotFound si la categoría no existe.
func (uc *HelpUseCase) GuidePDF(ctx context.Context, categoryID, search string) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("help: exportación PDF no configurada")
	}
	if categoryID == "" {
		categoryID = uc.defaultCategory
	}
	cat, ok := uc.kb.Category(categoryID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	entries := help.FilterFAQs(uc.kb, categoryID, search)
	doc, err := uc.renderer.RenderHelpGuide(ctx, cat, search, entries)
	if err != nil {
		return nil, fmt.Errorf("help: generar guía: %w", err)
	}
	return doc, nil
}

package usecase

import (
	"context"

	"github.com/jhoicas/tpv-panel-api/internal/application/dto"
	"github.com/jhoicas/tpv-panel-api/internal/domain/navigation"
)

// moduleLister lo implementa *ModuleService.
type moduleLister interface {
	ActiveModules(ctx context.Context, companyID string) (map[string]bool, error)
}

// NavigationQuery parámetros de GET /api/navigation.
type NavigationQuery struct {
	Role          string
	CompanyID     string
	Path          string
	Collapsed     bool
	ToggleSection string
}

// NavigationUseCase construye la barra lateral para el usuario autenticado.
type NavigationUseCase struct {
	modules moduleLister
}

// NewNavigationUseCase construye el caso de uso.
func NewNavigationUseCase(modules moduleLister) *NavigationUseCase {
	return &NavigationUseCase{modules: modules}
}

// Sidebar devuelve las secciones visibles con la entrada activa marcada. La
// sección de la ruta actual se abre por defecto; ToggleSection se aplica encima.
func (uc *NavigationUseCase) Sidebar(ctx context.Context, q NavigationQuery) (*dto.NavigationResponse, error) {
	active, err := uc.modules.ActiveModules(ctx, q.CompanyID)
	if err != nil {
		return nil, err
	}
	sections := navigation.Menu(q.Role, active)
	activeSection, activeItem := navigation.ActiveKey(sections, q.Path)

	state := navigation.SidebarState{Collapsed: q.Collapsed, OpenSection: activeSection}
	if q.ToggleSection != "" {
		state = state.ToggleSection(q.ToggleSection)
	}

	out := &dto.NavigationResponse{
		Collapsed: state.Collapsed,
		ActiveKey: activeItem,
		Sections:  make([]dto.NavSectionDTO, 0, len(sections)),
	}
	for _, sec := range sections {
		items := make([]dto.NavItemDTO, 0, len(sec.Items))
		for _, it := range sec.Items {
			items = append(items, dto.NavItemDTO{
				Key:    it.Key,
				Label:  it.Label,
				Path:   it.Path,
				Icon:   it.Icon,
				Active: it.Key == activeItem,
			})
		}
		out.Sections = append(out.Sections, dto.NavSectionDTO{
			Key:   sec.Key,
			Title: sec.Title,
			Open:  sec.Key == state.OpenSection,
			Items: items,
		})
	}
	return out, nil
}

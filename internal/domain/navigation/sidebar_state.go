package navigation

// SidebarState es el estado plegado/desplegado de la barra lateral. Como
// FilterState en el centro de ayuda, es un valor y sus métodos devuelven uno nuevo.
type SidebarState struct {
	Collapsed   bool
	OpenSection string // a lo sumo una sección desplegada
}

// ToggleCollapsed pliega o despliega la barra completa.
func (s SidebarState) ToggleCollapsed() SidebarState {
	s.Collapsed = !s.Collapsed
	return s
}

// ToggleSection abre la sección pulsada o la cierra si ya estaba abierta.
func (s SidebarState) ToggleSection(key string) SidebarState {
	if s.OpenSection == key {
		s.OpenSection = ""
		return s
	}
	s.OpenSection = key
	return s
}

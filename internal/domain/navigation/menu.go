// Package navigation define la barra lateral del panel y el menú de usuario de
// la cabecera. Todo es estático; la visibilidad depende del rol y de los
// módulos SaaS activos de la empresa.
package navigation

import (
	"slices"
	"strings"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
)

// Item es una entrada de la barra lateral.
type Item struct {
	Key    string
	Label  string
	Path   string
	Icon   string
	Module string   // módulo SaaS requerido; vacío = siempre disponible
	Roles  []string // roles permitidos; vacío = todos
}

// Section agrupa entradas bajo un título.
type Section struct {
	Key   string
	Title string
	Items []Item
}

var all = []string{entity.RoleAdmin, entity.RoleSupervisor, entity.RoleCajero}
var managers = []string{entity.RoleAdmin, entity.RoleSupervisor}

// Sidebar es la definición completa de la barra lateral.
var Sidebar = []Section{
	{
		Key:   "principal",
		Title: "Principal",
		Items: []Item{
			{Key: "dashboard", Label: "Inicio", Path: "/", Icon: "home", Roles: all},
			{Key: "tpv", Label: "Punto de venta", Path: "/tpv", Icon: "cash-register", Module: entity.ModuleBilling, Roles: all},
		},
	},
	{
		Key:   "operacion",
		Title: "Operación",
		Items: []Item{
			{Key: "ventas", Label: "Ventas", Path: "/ventas", Icon: "receipt", Module: entity.ModuleBilling, Roles: all},
			{Key: "productos", Label: "Productos", Path: "/productos", Icon: "tag", Module: entity.ModuleInventory, Roles: all},
			{Key: "inventario", Label: "Inventario", Path: "/inventario", Icon: "boxes", Module: entity.ModuleInventory, Roles: managers},
			{Key: "compras", Label: "Compras", Path: "/compras", Icon: "truck", Module: entity.ModulePurchasing, Roles: managers},
		},
	},
	{
		Key:   "gestion",
		Title: "Gestión",
		Items: []Item{
			{Key: "clientes", Label: "Clientes", Path: "/clientes", Icon: "users", Module: entity.ModuleCRM, Roles: all},
			{Key: "reportes", Label: "Reportes", Path: "/reportes", Icon: "chart-bar", Module: entity.ModuleAnalytics, Roles: managers},
			{Key: "usuarios", Label: "Usuarios", Path: "/usuarios", Icon: "user-cog", Roles: []string{entity.RoleAdmin}},
			{Key: "configuracion", Label: "Configuración", Path: "/configuracion", Icon: "settings", Roles: []string{entity.RoleAdmin}},
		},
	},
	{
		Key:   "soporte",
		Title: "Soporte",
		Items: []Item{
			{Key: "ayuda", Label: "Centro de ayuda", Path: "/ayuda", Icon: "help-circle"},
		},
	},
}

// Menu filtra Sidebar por rol y módulos activos. Las secciones vacías se omiten.
func Menu(role string, activeModules map[string]bool) []Section {
	out := make([]Section, 0, len(Sidebar))
	for _, sec := range Sidebar {
		items := make([]Item, 0, len(sec.Items))
		for _, it := range sec.Items {
			if len(it.Roles) > 0 && !slices.Contains(it.Roles, role) {
				continue
			}
			if it.Module != "" && !activeModules[it.Module] {
				continue
			}
			items = append(items, it)
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, Section{Key: sec.Key, Title: sec.Title, Items: items})
	}
	return out
}

// ActiveKey devuelve la entrada cuya ruta es el prefijo más largo de path.
// "/" solo coincide con "/" exacto.
func ActiveKey(sections []Section, path string) (sectionKey, itemKey string) {
	path = "/" + strings.Trim(path, "/")
	best := -1
	for _, sec := range sections {
		for _, it := range sec.Items {
			if !matchesPath(it.Path, path) || len(it.Path) <= best {
				continue
			}
			best = len(it.Path)
			sectionKey, itemKey = sec.Key, it.Key
		}
	}
	return sectionKey, itemKey
}

func matchesPath(itemPath, path string) bool {
	if itemPath == "/" {
		return path == "/"
	}
	return path == itemPath || strings.HasPrefix(path, itemPath+"/")
}

// UserMenuItem es una opción del menú desplegable de la cabecera.
type UserMenuItem struct {
	Key   string
	Label string
	Path  string
}

// UserMenu devuelve las opciones del menú de usuario; Configuración solo para admin.
func UserMenu(role string) []UserMenuItem {
	items := []UserMenuItem{{Key: "perfil", Label: "Mi perfil", Path: "/perfil"}}
	if role == entity.RoleAdmin {
		items = append(items, UserMenuItem{Key: "configuracion", Label: "Configuración", Path: "/configuracion"})
	}
	return append(items,
		UserMenuItem{Key: "ayuda", Label: "Ayuda", Path: "/ayuda"},
		UserMenuItem{Key: "logout", Label: "Cerrar sesión", Path: "/logout"},
	)
}

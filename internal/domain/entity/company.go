package entity

import "time"

// Company representa una organización/tenant del sistema.
type Company struct {
	ID        string
	Name      string
	NIT       string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Módulos SaaS disponibles (deben coincidir con el CHECK de la tabla company_modules).
const (
	ModuleInventory  = "inventory"
	ModuleBilling    = "billing"
	ModuleCRM        = "crm"
	ModuleAnalytics  = "analytics"
	ModulePurchasing = "purchasing"
)

// AllModules lista los módulos en el orden en que se consultan.
var AllModules = []string{ModuleInventory, ModuleBilling, ModuleCRM, ModuleAnalytics, ModulePurchasing}

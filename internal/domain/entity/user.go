package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleCajero     = "cajero"
)

// RoleLabel devuelve la etiqueta visible del rol para el menú de usuario.
func RoleLabel(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrador"
	case RoleSupervisor:
		return "Supervisor"
	case RoleCajero:
		return "Cajero"
	default:
		return ""
	}
}

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string // nombre entregado por el proveedor de autenticación
	Role         string // admin, supervisor, cajero
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

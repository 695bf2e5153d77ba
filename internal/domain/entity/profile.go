package entity

import "time"

// Profile es el documento de perfil por usuario que edita el propio usuario
// desde el panel. Todos los campos son opcionales: cadena vacía = ausente.
type Profile struct {
	UserID       string    `json:"user_id"`
	Nombre       string    `json:"nombre"`
	NombreCajero string    `json:"nombre_cajero"` // nombre impreso en tickets; "Cajero" = sin configurar
	Avatar       string    `json:"avatar"`
	UpdatedAt    time.Time `json:"updated_at"`
}

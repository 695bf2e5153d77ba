// Package identity resuelve el nombre visible del usuario en la cabecera del
// panel a partir de las fuentes de datos disponibles.
package identity

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// CashierSentinel es el valor por defecto de nombreCajero; equivale a "sin configurar".
	CashierSentinel = "Cajero"
	// FallbackName se usa cuando ninguna fuente aporta un nombre.
	FallbackName = "Usuario"
)

// UserIdentity agrupa las fuentes opcionales del nombre. Cadena vacía = ausente.
type UserIdentity struct {
	ProfileName           string
	ConfiguredCashierName string
	AuthDisplayName       string
	Email                 string
}

// Extractor obtiene un candidato a nombre; "" significa que no aplica.
type Extractor func(UserIdentity) string

// DefaultChain es el orden de prioridad de la cabecera.
var DefaultChain = []Extractor{
	FromProfile,
	FromCashierName,
	FromAuthProvider,
	FromEmail,
}

// ResolveDisplayName devuelve el primer nombre no vacío de DefaultChain o "Usuario".
func ResolveDisplayName(id UserIdentity) string {
	return FirstMatch(id, DefaultChain...)
}

// FirstMatch prueba los extractores en orden y devuelve el primer resultado no vacío.
func FirstMatch(id UserIdentity, chain ...Extractor) string {
	for _, extract := range chain {
		if name := extract(id); name != "" {
			return name
		}
	}
	return FallbackName
}

// FromProfile usa el nombre que el usuario escribió en su perfil.
func FromProfile(id UserIdentity) string {
	return strings.TrimSpace(id.ProfileName)
}

// FromCashierName usa el nombre de tickets, salvo el valor por defecto.
func FromCashierName(id UserIdentity) string {
	name := strings.TrimSpace(id.ConfiguredCashierName)
	if name == CashierSentinel {
		return ""
	}
	return name
}

// FromAuthProvider usa el nombre del proveedor de autenticación.
func FromAuthProvider(id UserIdentity) string {
	return strings.TrimSpace(id.AuthDisplayName)
}

// FromEmail deriva el nombre de la parte local del email.
func FromEmail(id UserIdentity) string {
	email := strings.TrimSpace(id.Email)
	if email == "" {
		return ""
	}
	local, _, _ := strings.Cut(email, "@")
	return capitalizeFirst(local)
}

// capitalizeFirst pasa a mayúscula solo el primer carácter; el resto queda igual.
// Un Caser no se comparte entre goroutines, por eso se crea en cada llamada.
func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Spanish).String(s[:size]) + s[size:]
}

package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tpv-panel-api/internal/domain/identity"
)

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   identity.UserIdentity
		want string
	}{
		{"nombre de perfil recortado", identity.UserIdentity{ProfileName: "  Ana  "}, "Ana"},
		{"cajero centinela cae a Usuario", identity.UserIdentity{ConfiguredCashierName: "Cajero"}, "Usuario"},
		{"cajero centinela con espacios", identity.UserIdentity{ConfiguredCashierName: "  Cajero "}, "Usuario"},
		{"cajero configurado", identity.UserIdentity{ConfiguredCashierName: "Luis"}, "Luis"},
		{"email deriva nombre", identity.UserIdentity{Email: "john.doe@x.com"}, "John.doe"},
		{"vacío", identity.UserIdentity{}, "Usuario"},
		{
			"perfil gana a todo",
			identity.UserIdentity{ProfileName: "Ana", ConfiguredCashierName: "Luis", AuthDisplayName: "Google Ana", Email: "a@x.com"},
			"Ana",
		},
		{
			"perfil en blanco pasa al cajero",
			identity.UserIdentity{ProfileName: "   ", ConfiguredCashierName: " Luis ", AuthDisplayName: "Google"},
			"Luis",
		},
		{
			"centinela pasa al proveedor de auth",
			identity.UserIdentity{ConfiguredCashierName: "Cajero", AuthDisplayName: " María López "},
			"María López",
		},
		{
			"centinela pasa al email",
			identity.UserIdentity{ConfiguredCashierName: "Cajero", Email: "luis@tienda.co"},
			"Luis",
		},
		{"email sin arroba usa todo", identity.UserIdentity{Email: "operador"}, "Operador"},
		{"email conserva el resto", identity.UserIdentity{Email: "mARIA@x.com"}, "MARIA"},
		{"email con primera letra acentuada", identity.UserIdentity{Email: "ángela@x.com"}, "Ángela"},
		{"email con parte local vacía", identity.UserIdentity{Email: "@x.com"}, "Usuario"},
		{"email en blanco", identity.UserIdentity{Email: "   "}, "Usuario"},
		{"centinela distingue mayúsculas", identity.UserIdentity{ConfiguredCashierName: "cajero"}, "cajero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identity.ResolveDisplayName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestFirstMatch_CadenaPersonalizada(t *testing.T) {
	id := identity.UserIdentity{ProfileName: "Ana", Email: "pedro@x.com"}

	assert.Equal(t, "Pedro", identity.FirstMatch(id, identity.FromEmail, identity.FromProfile))
	assert.Equal(t, identity.FallbackName, identity.FirstMatch(id))
}

package help_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

func sampleKB() *help.KnowledgeBase {
	return help.NewKnowledgeBase([]help.Category{
		{
			ID:          "tpv",
			DisplayName: "Punto de venta",
			Entries: []help.Entry{
				{ID: 1, Question: "¿Cómo abro una venta nueva?", Answer: "Pulsa Nueva venta en la barra superior del TPV."},
				{ID: 2, Question: "¿Cómo aplico un descuento?", Answer: "Selecciona la línea y pulsa Descuento."},
				{ID: 3, Question: "¿Cómo proceso una devolución?", Answer: "Abre el ticket desde el historial y pulsa Devolver productos."},
				{ID: 4, Question: "¿Puedo cobrar con varios métodos de pago?", Answer: "Sí, usa Pago mixto al cobrar."},
			},
		},
		{
			ID:          "inventario",
			DisplayName: "Inventario",
			Entries: []help.Entry{
				{ID: 1, Question: "¿Cómo ajusto el stock?", Answer: "Desde Inventario > Ajustes."},
				{ID: 2, Question: "¿Qué es el stock mínimo?", Answer: "El nivel que dispara la alerta de reposición."},
			},
		},
	})
}

func ids(entries []help.Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterFAQs_BusquedaVaciaDevuelveTodoEnOrden(t *testing.T) {
	got := help.FilterFAQs(sampleKB(), "tpv", "")
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestFilterFAQs_SinDistinguirMayusculasNiTildes(t *testing.T) {
	got := help.FilterFAQs(sampleKB(), "tpv", "DEVOLUCION")
	assert.Equal(t, []int{3}, ids(got))
}

func TestFilterFAQs_BuscaTambienEnRespuesta(t *testing.T) {
	got := help.FilterFAQs(sampleKB(), "tpv", "pago MIXTO")
	assert.Equal(t, []int{4}, ids(got))
}

func TestFilterFAQs_CategoriaInexistente(t *testing.T) {
	got := help.FilterFAQs(sampleKB(), "nonexistent", "x")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterFAQs_SinCoincidencias(t *testing.T) {
	got := help.FilterFAQs(sampleKB(), "inventario", "factura")
	assert.Empty(t, got)
}

func TestFilterFAQs_Idempotente(t *testing.T) {
	kb := sampleKB()
	first := help.FilterFAQs(kb, "tpv", "cómo")
	second := help.FilterFAQs(kb, "tpv", "cómo")
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3}, ids(first))
}

func TestFilterFAQs_NoModificaLaBase(t *testing.T) {
	kb := sampleKB()
	got := help.FilterFAQs(kb, "tpv", "")
	got[0].Question = "cambiada"

	again := help.FilterFAQs(kb, "tpv", "")
	assert.Equal(t, "¿Cómo abro una venta nueva?", again[0].Question)
}

func TestToggleExpanded(t *testing.T) {
	two := 2

	got := help.ToggleExpanded(nil, 2)
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)

	assert.Nil(t, help.ToggleExpanded(&two, 2))

	got = help.ToggleExpanded(&two, 5)
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)
	assert.Equal(t, 2, two, "el valor actual no debe modificarse")
}

func TestFold(t *testing.T) {
	assert.Equal(t, "facturacion electronica", help.Fold("Facturación ELECTRÓNICA"))
	assert.Equal(t, "nino", help.Fold("NIÑO"))
	assert.Equal(t, "", help.Fold(""))
}

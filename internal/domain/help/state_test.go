package help_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

func TestNewFilterState(t *testing.T) {
	kb := sampleKB()

	s := help.NewFilterState(kb, help.DefaultCategoryID)
	assert.Equal(t, "tpv", s.ActiveCategoryID)
	assert.Empty(t, s.SearchTerm)
	assert.Nil(t, s.ExpandedEntryID)

	s = help.NewFilterState(kb, "no-existe")
	assert.Equal(t, "tpv", s.ActiveCategoryID, "cae a la primera categoría")

	s = help.NewFilterState(help.NewKnowledgeBase(nil), "tpv")
	assert.Empty(t, s.ActiveCategoryID)
}

func TestFilterState_CambiarCategoriaNoLimpiaBusquedaNiExpandida(t *testing.T) {
	kb := sampleKB()
	s := help.NewFilterState(kb, "tpv").SetSearch("stock").Toggle(2)

	next := s.SelectCategory(kb, "inventario")

	assert.Equal(t, "inventario", next.ActiveCategoryID)
	assert.Equal(t, "stock", next.SearchTerm)
	require.NotNil(t, next.ExpandedEntryID)
	assert.Equal(t, 2, *next.ExpandedEntryID)
	assert.True(t, next.IsExpanded(2), "el id 2 también existe en inventario")
	assert.Equal(t, []int{1, 2}, ids(next.Visible(kb)))
}

func TestFilterState_CategoriaDesconocidaSeIgnora(t *testing.T) {
	kb := sampleKB()
	s := help.NewFilterState(kb, "inventario")

	next := s.SelectCategory(kb, "no-existe")
	assert.Equal(t, "inventario", next.ActiveCategoryID)
}

func TestFilterState_ToggleUnaSolaAbierta(t *testing.T) {
	kb := sampleKB()
	s := help.NewFilterState(kb, "tpv")

	s1 := s.Toggle(1)
	s2 := s1.Toggle(3)
	s3 := s2.Toggle(3)

	assert.True(t, s1.IsExpanded(1))
	assert.False(t, s2.IsExpanded(1))
	assert.True(t, s2.IsExpanded(3))
	assert.Nil(t, s3.ExpandedEntryID)
	assert.Nil(t, s.ExpandedEntryID, "el estado original no cambia")
}

func TestFilterState_Inmutable(t *testing.T) {
	kb := sampleKB()
	base := help.NewFilterState(kb, "tpv").Toggle(1)

	other := base.Toggle(4)
	*other.ExpandedEntryID = 99

	assert.True(t, base.IsExpanded(1))
}

func TestFilterState_Visible(t *testing.T) {
	kb := sampleKB()
	s := help.NewFilterState(kb, "tpv").SetSearch("devolución")
	assert.Equal(t, []int{3}, ids(s.Visible(kb)))
}

func TestKnowledgeBase_IdDuplicadoPrevaleceElPrimero(t *testing.T) {
	kb := help.NewKnowledgeBase([]help.Category{
		{ID: "a", DisplayName: "Primera"},
		{ID: "a", DisplayName: "Segunda"},
	})
	cat, ok := kb.Category("a")
	require.True(t, ok)
	assert.Equal(t, "Primera", cat.DisplayName)
	assert.Len(t, kb.Categories(), 1)
}

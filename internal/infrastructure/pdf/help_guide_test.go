package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

func TestRenderHelpGuide_GeneraPDF(t *testing.T) {
	g := NewHelpGuideRenderer("tpv-panel")
	g.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }

	cat := help.Category{ID: "tpv", DisplayName: "Punto de venta"}
	entries := []help.Entry{
		{ID: 1, Question: "¿Cómo abro la caja?", Answer: "Desde el TPV pulsa Abrir caja e indica el fondo inicial."},
		{ID: 3, Question: "¿Cómo proceso una devolución?", Answer: "Busca el ticket en el historial y pulsa Devolver."},
	}

	doc, err := g.RenderHelpGuide(context.Background(), cat, "caja", entries)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderHelpGuide_SinPreguntas(t *testing.T) {
	g := NewHelpGuideRenderer("tpv-panel")

	doc, err := g.RenderHelpGuide(context.Background(), help.Category{ID: "x", DisplayName: "X"}, "", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestRenderHelpGuide_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHelpGuideRenderer("tpv-panel").RenderHelpGuide(ctx, help.Category{ID: "x"}, "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextHeight(t *testing.T) {
	assert.Equal(t, 7.0, textHeight("corta", 5))
	long := string(bytes.Repeat([]byte("a"), charsPerLine*2))
	assert.Equal(t, 17.0, textHeight(long, 5))
}

// Package pdf imprime la guía de ayuda del TPV.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Centro de ayuda + categoría  │  Fecha de impresión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FILTRO: búsqueda aplicada + n° de preguntas                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  N. Pregunta                                                 │
//	│     Respuesta                                                │
//	│  ...                                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tpv-panel-api/internal/application/ports"
	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// caracteres aproximados por línea de texto a 9pt en el ancho útil de A4.
const charsPerLine = 95

// ── Renderer ──────────────────────────────────────────────────────────────────

// HelpGuideRenderer implementa ports.HelpGuideRenderer usando Maroto v2.
type HelpGuideRenderer struct {
	appName string
	now     func() time.Time
}

var _ ports.HelpGuideRenderer = (*HelpGuideRenderer)(nil)

// NewHelpGuideRenderer construye el renderer. appName se usa como autor del documento.
func NewHelpGuideRenderer(appName string) *HelpGuideRenderer {
	return &HelpGuideRenderer{appName: appName, now: time.Now}
}

// RenderHelpGuide genera el PDF y devuelve sus bytes.
func (g *HelpGuideRenderer) RenderHelpGuide(ctx context.Context, category help.Category, search string, entries []help.Entry) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Centro de ayuda: "+category.DisplayName, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(category, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filterRow(search, len(entries)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(entries) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No se encontraron preguntas para este filtro.", props.Text{
				Size: 9, Top: 4, Align: align.Center, Color: colorGray,
			}),
		)))
	}
	for i, e := range entries {
		m.AddRows(entryRows(i+1, e)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar guía: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(category help.Category, printedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CENTRO DE AYUDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(category.DisplayName, props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Impreso: "+printedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func filterRow(search string, total int) core.Row {
	label := "Todas las preguntas"
	if search != "" {
		label = fmt.Sprintf("Búsqueda: %q", search)
	}
	return row.New(8).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(4).Add(text.New(fmt.Sprintf("%d pregunta(s)", total), props.Text{
			Size: 8, Top: 2, Align: align.Right, Color: colorGray,
		})),
	)
}

// entryRows: pregunta en negrita y respuesta debajo con sangría.
func entryRows(n int, e help.Entry) []core.Row {
	question := fmt.Sprintf("%d. %s", n, e.Question)
	return []core.Row{
		row.New(textHeight(question, 5)).Add(col.New(12).Add(
			text.New(question, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Color: colorPrimary,
			}),
		)),
		row.New(textHeight(e.Answer, 4.5)).Add(col.New(12).Add(
			text.New(e.Answer, props.Text{Size: 9, Top: 1, Left: 4}),
		)),
	}
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("¿No encuentras lo que buscas? Contacta con el administrador de tu empresa.", props.Text{
			Size: 7, Color: colorGray, Top: 2, Align: align.Center,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// textHeight estima la altura de fila para que el texto envuelto no se solape.
func textHeight(s string, lineHeight float64) float64 {
	lines := utf8.RuneCountInString(s)/charsPerLine + 1
	return float64(lines)*lineHeight + 2
}

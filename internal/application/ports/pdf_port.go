package ports

import (
	"context"

	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

// HelpGuideRenderer define el puerto de salida para imprimir la guía de ayuda.
// El caso de uso solo conoce este contrato; la implementación vive en infrastructure/pdf.
type HelpGuideRenderer interface {
	// RenderHelpGuide devuelve los bytes de un PDF con las preguntas indicadas.
	// search se imprime como subtítulo cuando no está vacío.
	RenderHelpGuide(ctx context.Context, category help.Category, search string, entries []help.Entry) ([]byte, error)
}

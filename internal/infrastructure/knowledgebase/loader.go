// Package knowledgebase carga la base de conocimiento del centro de ayuda.
// Por defecto usa faqs.yaml compilado en el binario; una ruta externa permite
// reemplazarla sin recompilar.
package knowledgebase

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tpv-panel-api/internal/domain"
	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

//go:embed faqs.yaml
var embeddedFAQs []byte

type document struct {
	Categories []help.Category `yaml:"categories"`
}

// Default devuelve la base compilada. Entra en pánico si el archivo embebido es
// inválido, lo que solo puede ocurrir por un error de compilación del repo.
func Default() *help.KnowledgeBase {
	kb, err := Parse(embeddedFAQs)
	if err != nil {
		panic("knowledgebase: faqs.yaml embebido inválido: " + err.Error())
	}
	return kb
}

// Load lee la base desde path, o la embebida si path está vacío, y exige que
// defaultCategory exista (vacío = "tpv").
func Load(path, defaultCategory string) (*help.KnowledgeBase, error) {
	data := embeddedFAQs
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("leer base de conocimiento: %w", err)
		}
		data = raw
	}
	kb, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if defaultCategory == "" {
		defaultCategory = help.DefaultCategoryID
	}
	if !kb.Has(defaultCategory) {
		return nil, fmt.Errorf("%w: categoría por defecto %q inexistente", domain.ErrInvalidKnowledgeBase, defaultCategory)
	}
	return kb, nil
}

// Parse decodifica y valida un documento YAML.
func Parse(data []byte) (*help.KnowledgeBase, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKnowledgeBase, err)
	}
	if err := validate(doc.Categories); err != nil {
		return nil, err
	}
	return help.NewKnowledgeBase(doc.Categories), nil
}

func validate(categories []help.Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: sin categorías", domain.ErrInvalidKnowledgeBase)
	}
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.DisplayName) == "" {
			return fmt.Errorf("%w: categoría sin id o nombre", domain.ErrInvalidKnowledgeBase)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: categoría %q duplicada", domain.ErrInvalidKnowledgeBase, c.ID)
		}
		seen[c.ID] = true

		ids := make(map[int]bool, len(c.Entries))
		for _, e := range c.Entries {
			if ids[e.ID] {
				return fmt.Errorf("%w: pregunta %d duplicada en %q", domain.ErrInvalidKnowledgeBase, e.ID, c.ID)
			}
			ids[e.ID] = true
			if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
				return fmt.Errorf("%w: pregunta %d de %q incompleta", domain.ErrInvalidKnowledgeBase, e.ID, c.ID)
			}
		}
	}
	return nil
}

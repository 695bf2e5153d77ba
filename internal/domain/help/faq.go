// Package help contiene la base de conocimiento del centro de ayuda y la
// lógica pura de búsqueda, filtrado por categoría y expansión de preguntas.
package help

// Entry es una pregunta frecuente. ID es único dentro de su categoría.
type Entry struct {
	ID       int    `yaml:"id" json:"id"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Category agrupa preguntas en el orden en que se muestran.
type Category struct {
	ID          string  `yaml:"id" json:"id"`
	DisplayName string  `yaml:"name" json:"name"`
	Entries     []Entry `yaml:"entries" json:"entries"`
}

// KnowledgeBase es el conjunto ordenado de categorías. No se modifica tras construirse.
type KnowledgeBase struct {
	categories []Category
	index      map[string]int
}

// NewKnowledgeBase construye la base a partir de categorías ya validadas.
// Si un id se repite, prevalece la primera aparición.
func NewKnowledgeBase(categories []Category) *KnowledgeBase {
	kb := &KnowledgeBase{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if _, dup := kb.index[c.ID]; dup {
			continue
		}
		entries := make([]Entry, len(c.Entries))
		copy(entries, c.Entries)
		c.Entries = entries
		kb.index[c.ID] = len(kb.categories)
		kb.categories = append(kb.categories, c)
	}
	return kb
}

// Categories devuelve una copia de las categorías en orden.
func (kb *KnowledgeBase) Categories() []Category {
	if kb == nil {
		return nil
	}
	out := make([]Category, len(kb.categories))
	copy(out, kb.categories)
	return out
}

// Category busca una categoría por id.
func (kb *KnowledgeBase) Category(id string) (Category, bool) {
	if kb == nil {
		return Category{}, false
	}
	i, ok := kb.index[id]
	if !ok {
		return Category{}, false
	}
	return kb.categories[i], true
}

// Has informa si existe la categoría.
func (kb *KnowledgeBase) Has(id string) bool {
	_, ok := kb.Category(id)
	return ok
}

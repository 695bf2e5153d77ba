package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
)

type memUsers map[string]*entity.User

func (m memUsers) Create(_ context.Context, u *entity.User) error { m[u.ID] = u; return nil }
func (m memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m[id], nil
}
func (m memUsers) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (m memUsers) GetByEmailAndCompany(context.Context, string, string) (*entity.User, error) {
	return nil, nil
}

type memProfiles struct {
	docs  map[string]entity.Profile
	reads int
	err   error
}

func newMemProfiles() *memProfiles { return &memProfiles{docs: map[string]entity.Profile{}} }

func (m *memProfiles) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.docs[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProfiles) Upsert(_ context.Context, p *entity.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.docs[p.UserID] = *p
	return nil
}

type memCache struct {
	docs    map[string]entity.Profile
	broken  bool
	deletes int
}

func newMemCache() *memCache { return &memCache{docs: map[string]entity.Profile{}} }

var errCacheDown = errors.New("redis caído")

func (c *memCache) Get(_ context.Context, userID string) (*entity.Profile, bool, error) {
	if c.broken {
		return nil, false, errCacheDown
	}
	p, ok := c.docs[userID]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *memCache) Set(_ context.Context, p *entity.Profile) error {
	if c.broken {
		return errCacheDown
	}
	c.docs[p.UserID] = *p
	return nil
}

func (c *memCache) Delete(_ context.Context, userID string) error {
	c.deletes++
	if c.broken {
		return errCacheDown
	}
	delete(c.docs, userID)
	return nil
}

type fixedModules struct {
	active map[string]bool
	err    error
}

func (f fixedModules) ActiveModules(context.Context, string) (map[string]bool, error) {
	return f.active, f.err
}

type fakeRenderer struct {
	category help.Category
	search   string
	entries  []help.Entry
}

func (r *fakeRenderer) RenderHelpGuide(_ context.Context, c help.Category, search string, entries []help.Entry) ([]byte, error) {
	r.category, r.search, r.entries = c, search, entries
	return []byte("%PDF-1.3"), nil
}

func sampleKB() *help.KnowledgeBase {
	return help.NewKnowledgeBase([]help.Category{
		{ID: "tpv", DisplayName: "Punto de venta", Entries: []help.Entry{
			{ID: 1, Question: "¿Cómo abro una venta?", Answer: "Pulsa Nueva venta."},
			{ID: 2, Question: "¿Cómo aplico un descuento?", Answer: "Selecciona la línea."},
			{ID: 3, Question: "¿Cómo proceso una devolución?", Answer: "Desde el historial."},
		}},
		{ID: "cuenta", DisplayName: "Cuenta", Entries: []help.Entry{
			{ID: 1, Question: "¿Cómo cambio mi nombre?", Answer: "En Mi perfil."},
		}},
	})
}

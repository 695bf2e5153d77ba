package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/tpv-panel-api/internal/application/analytics"
	"github.com/jhoicas/tpv-panel-api/internal/application/auth"
	"github.com/jhoicas/tpv-panel-api/internal/application/usecase"
	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
	"github.com/jhoicas/tpv-panel-api/internal/domain/help"
	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
	apphttp "github.com/jhoicas/tpv-panel-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tpv-panel-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct{ byID map[string]*entity.User }

func (m *memUsers) Create(_ context.Context, u *entity.User) error { m.byID[u.ID] = u; return nil }
func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.byID[id], nil
}
func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error) {
	u, _ := m.GetByEmail(ctx, email)
	if u != nil && u.CompanyID == companyID {
		return u, nil
	}
	return nil, nil
}

type memProfiles struct{ docs map[string]entity.Profile }

func (m *memProfiles) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	p, ok := m.docs[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (m *memProfiles) Upsert(_ context.Context, p *entity.Profile) error {
	m.docs[p.UserID] = *p
	return nil
}

type memCompanies struct {
	modules map[string]bool
	err     error
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id != testCompanyID {
		return nil, nil
	}
	return &entity.Company{ID: id, Name: "Tienda Centro", Status: "active"}, nil
}
func (m *memCompanies) HasActiveModule(_ context.Context, _ string, module string) (bool, error) {
	return m.modules[module], m.err
}
func (m *memCompanies) ActiveModules(context.Context, string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []string
	for _, mod := range entity.AllModules {
		if m.modules[mod] {
			out = append(out, mod)
		}
	}
	return out, nil
}

type fixedSales struct{}

func (fixedSales) GetTotals(_ context.Context, _ string, from, to time.Time) (repository.SalesTotals, error) {
	if to.Sub(from) <= 24*time.Hour {
		return repository.SalesTotals{Revenue: decimal.NewFromInt(150), TicketCount: 3}, nil
	}
	return repository.SalesTotals{Revenue: decimal.NewFromInt(1000), TicketCount: 8}, nil
}

type stubRenderer struct{}

func (stubRenderer) RenderHelpGuide(context.Context, help.Category, string, []help.Entry) ([]byte, error) {
	return []byte("%PDF-1.3 guía"), nil
}

var errDBDown = errors.New("db caída")

// ──────────────────────────────────────────────────────────────────────────────
// App de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	users     *memUsers
	profiles  *memProfiles
	companies *memCompanies
}

func helpKB() *help.KnowledgeBase {
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

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users: &memUsers{byID: map[string]*entity.User{
			testUserID: {ID: testUserID, CompanyID: testCompanyID, Email: "john.doe@tienda.com", Role: entity.RoleCajero, Status: "active"},
		}},
		profiles:  &memProfiles{docs: map[string]entity.Profile{}},
		companies: &memCompanies{modules: map[string]bool{entity.ModuleBilling: true, entity.ModuleAnalytics: true}},
	}

	moduleSvc := usecase.NewModuleService(env.companies)
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(env.users, env.companies, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		ProfileUC:     usecase.NewProfileUseCase(env.users, env.profiles, nil, zerolog.Nop()),
		NavigationUC:  usecase.NewNavigationUseCase(moduleSvc),
		HelpUC:        usecase.NewHelpUseCase(helpKB(), help.DefaultCategoryID, stubRenderer{}),
		DashboardUC:   appanalytics.NewDashboardUseCase(fixedSales{}),
		ModuleService: moduleSvc,
		JWTSecret:     testJWTSecret,
	})
	env.app = app
	return env
}

// do lanza la petición con el token del rol indicado ("" = sin Authorization).
func (e *testEnv) do(t *testing.T, method, target, role, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func tokenWith(t *testing.T, id pkgjwt.Identity) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, id, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

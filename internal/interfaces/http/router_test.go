package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cartera-api/internal/application/usecase"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	apphttp "github.com/jhoicas/cartera-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub de persistencia en memoria para administradoras
// ──────────────────────────────────────────────────────────────────────────────

type stubCompanyRepo struct {
	byID   map[string]*entity.Company
	byCode map[string]*entity.Company
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{
		byID:   map[string]*entity.Company{},
		byCode: map[string]*entity.Company{},
	}
}

func (r *stubCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.byID[c.ID] = c
	r.byCode[c.Code] = c
	return nil
}

func (r *stubCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.byID[id], nil
}

func (r *stubCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	return r.byCode[code], nil
}

func (r *stubCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

// buildRouterApp monta el router completo con un repositorio de administradoras
// en memoria; el resto de dependencias no se ejercita en estos tests.
func buildRouterApp(repo *stubCompanyRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(repo),
		JWTSecret: testJWTSecret,
	})
	return app
}

func companiesRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de protección de rutas de administradoras
// ──────────────────────────────────────────────────────────────────────────────

// Sin token, ni lectura ni escritura sobre /api/companies.
func TestRouter_CompaniesSinToken_Retorna401(t *testing.T) {
	app := buildRouterApp(newStubCompanyRepo())

	resp := companiesRequest(t, app, http.MethodGet, "/api/companies", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"listar administradoras requiere autenticación")

	resp2 := companiesRequest(t, app, http.MethodPost, "/api/companies", "",
		map[string]string{"name": "Porvenir", "code": "FPN"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode,
		"crear administradora requiere autenticación")
}

// Crear administradora es solo admin; un gestor autenticado recibe 403.
func TestRouter_CrearCompanyComoGestor_Retorna403(t *testing.T) {
	repo := newStubCompanyRepo()
	app := buildRouterApp(repo)

	resp := companiesRequest(t, app, http.MethodPost, "/api/companies",
		tokenForRole(t, entity.RoleGestor),
		map[string]string{"name": "Porvenir", "code": "FPN"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, repo.byCode, "nada debe persistirse cuando se rechaza por rol")
}

// Un admin autenticado sí puede crear, y cualquier rol autenticado puede listar.
func TestRouter_CrearYListarCompanies_ConTokenValido(t *testing.T) {
	repo := newStubCompanyRepo()
	app := buildRouterApp(repo)

	resp := companiesRequest(t, app, http.MethodPost, "/api/companies",
		tokenForRole(t, entity.RoleAdmin),
		map[string]string{"name": "Porvenir", "code": "FPN"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Contains(t, repo.byCode, "FPN")

	resp2 := companiesRequest(t, app, http.MethodGet, "/api/companies",
		tokenForRole(t, entity.RoleGestor), nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode,
		"la lectura del catálogo de administradoras está abierta a cualquier usuario autenticado")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

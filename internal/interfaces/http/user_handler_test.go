package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
)

// POST /api/users devuelve una api key que autentica de inmediato y que no se
// repite entre llamadas.
func TestUser_CrearDevuelveLlaveUtilizable(t *testing.T) {
	env := newTestEnv(t)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		resp := doJSON(t, env.app, http.MethodPost, "/api/users", adminKey,
			map[string]any{"name": "Gerente", "email": "gerente@acme.test", "role": "manager"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.CreateUserResponse
		decodeJSON(t, resp, &out)
		require.NotEmpty(t, out.APIKey)
		assert.False(t, seen[out.APIKey], "las llaves no deben repetirse entre llamadas")
		seen[out.APIKey] = true

		// La llave recién emitida autentica un endpoint de manager.
		listResp := doJSON(t, env.app, http.MethodGet, "/api/companies", out.APIKey, nil)
		assert.Equal(t, http.StatusOK, listResp.StatusCode,
			"la llave devuelta debe autenticar de inmediato")
		listResp.Body.Close()
	}
}

// El role por defecto es viewer: la cuenta creada sin role no accede a
// ningún endpoint de negocio.
func TestUser_RolePorDefectoViewer(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/users", adminKey,
		map[string]any{"name": "Nuevo", "email": "nuevo@acme.test"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CreateUserResponse
	decodeJSON(t, resp, &out)

	listResp := doJSON(t, env.app, http.MethodGet, "/api/companies", out.APIKey, nil)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusForbidden, listResp.StatusCode,
		"una cuenta viewer no accede al listado")
}

// name y email requeridos → 422.
func TestUser_Validacion(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]any{
		{"email": "x@acme.test"},
		{"name": "X"},
	} {
		resp := doJSON(t, env.app, http.MethodPost, "/api/users", adminKey, body)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		resp.Body.Close()
	}
}

// El role es un string abierto: uno fuera del catálogo se acepta, se persiste
// tal cual y queda inerte en el gate (no calza con ningún conjunto permitido).
func TestUser_RoleFueraDeCatalogoEsInerte(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/users", adminKey,
		map[string]any{"name": "X", "email": "x@acme.test", "role": "superuser"})
	require.Equal(t, http.StatusOK, resp.StatusCode, "un role desconocido no es error de validación")

	var out dto.CreateUserResponse
	decodeJSON(t, resp, &out)

	cuenta, err := env.accounts.FindByEmail(context.Background(), "x@acme.test")
	require.NoError(t, err)
	require.NotNil(t, cuenta)
	assert.Equal(t, "superuser", cuenta.Role, "el role se persiste sin normalizar")

	// La llave autentica (401 no) pero ningún endpoint la autoriza (403 sí).
	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/companies", nil},
		{http.MethodPost, "/api/modules/toggle", map[string]any{"company_id": "c1", "name": "Sales", "enabled": true}},
	} {
		r := doJSON(t, env.app, tc.method, tc.path, out.APIKey, tc.body)
		assert.Equal(t, http.StatusForbidden, r.StatusCode,
			"role desconocido debe ser inerte en %s %s", tc.method, tc.path)
		r.Body.Close()
	}
}

// Reemitir la llave invalida la anterior de inmediato: el siguiente request
// con la llave vieja recibe 401.
func TestUser_ReemisionInvalidaLlaveAnterior(t *testing.T) {
	env := newTestEnv(t)

	// El manager sembrado puede listar con su llave original.
	resp := doJSON(t, env.app, http.MethodGet, "/api/companies", managerKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodPost, "/api/users/issue-key", adminKey,
		map[string]any{"email": "manager@acme.test"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.IssueKeyResponse
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.APIKey)
	assert.NotEqual(t, managerKey, out.APIKey)

	// Llave vieja → 401 sin período de gracia.
	resp = doJSON(t, env.app, http.MethodGet, "/api/companies", managerKey, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la llave anterior queda inválida de inmediato")
	resp.Body.Close()

	// Llave nueva → 200.
	resp = doJSON(t, env.app, http.MethodGet, "/api/companies", out.APIKey, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// Reemitir para un email inexistente → 404 NOT_FOUND.
func TestUser_ReemisionEmailInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/users/issue-key", adminKey,
		map[string]any{"email": "fantasma@acme.test"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

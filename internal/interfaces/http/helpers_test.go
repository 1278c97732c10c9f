package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/mini-erp/internal/application/auth"
	"github.com/tu-usuario/mini-erp/internal/application/usecase"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
	apphttp "github.com/tu-usuario/mini-erp/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminKey   = "clave-admin-0001"
	managerKey = "clave-manager-0001"
	viewerKey  = "clave-viewer-0001"
)

// fakeAccountRepo repositorio de cuentas en memoria.
type fakeAccountRepo struct {
	accounts []*entity.Account
	failing  bool // simula el store caído
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) (string, error) {
	if r.failing {
		return "", fmt.Errorf("insert account: %w", domain.ErrStoreUnavailable)
	}
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	r.accounts = append(r.accounts, account)
	return account.ID.Hex(), nil
}

func (r *fakeAccountRepo) FindByAPIKey(_ context.Context, key string) (*entity.Account, error) {
	if r.failing {
		return nil, fmt.Errorf("find account: %w", domain.ErrStoreUnavailable)
	}
	for _, a := range r.accounts {
		if a.APIKey == key {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if r.failing {
		return nil, fmt.Errorf("find account: %w", domain.ErrStoreUnavailable)
	}
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) UpdateAPIKey(_ context.Context, id string, key string) error {
	if r.failing {
		return fmt.Errorf("update api_key: %w", domain.ErrStoreUnavailable)
	}
	for _, a := range r.accounts {
		if a.ID.Hex() == id {
			a.APIKey = key
			return nil
		}
	}
	return domain.ErrNotFound
}

// seed agrega una cuenta con rol y llave fijos.
func (r *fakeAccountRepo) seed(name, email, role, key string) *entity.Account {
	a := &entity.Account{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Email:  email,
		Role:   role,
		APIKey: key,
	}
	r.accounts = append(r.accounts, a)
	return a
}

// fakeStore DocumentStore en memoria. Serializa los registros vía bson para
// reproducir la forma de los documentos que devuelve el adaptador real
// (campos con tags bson, null para punteros nil, "_id" en string).
type fakeStore struct {
	records map[repository.Collection][]storedRecord
	failing bool
}

type storedRecord struct {
	id     string
	record any
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[repository.Collection][]storedRecord)}
}

func (s *fakeStore) CreateDocument(_ context.Context, collection repository.Collection, record any) (string, error) {
	if s.failing {
		return "", fmt.Errorf("insert en %s: %w", collection, domain.ErrStoreUnavailable)
	}
	id := primitive.NewObjectID().Hex()
	s.records[collection] = append(s.records[collection], storedRecord{id: id, record: record})
	return id, nil
}

func (s *fakeStore) GetDocuments(_ context.Context, collection repository.Collection, limit int64) ([]repository.Document, error) {
	if s.failing {
		return nil, fmt.Errorf("find en %s: %w", collection, domain.ErrStoreUnavailable)
	}
	var docs []repository.Document
	for _, sr := range s.records[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		raw, err := bson.Marshal(sr.record)
		if err != nil {
			return nil, err
		}
		var doc repository.Document
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		doc["_id"] = sr.id
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *fakeStore) Ping(_ context.Context) error {
	if s.failing {
		return fmt.Errorf("server selection timeout")
	}
	return nil
}

func (s *fakeStore) ListCollections(_ context.Context, limit int) ([]string, error) {
	if s.failing {
		return nil, fmt.Errorf("server selection timeout")
	}
	var names []string
	for c := range s.records {
		if len(names) >= limit {
			break
		}
		names = append(names, string(c))
	}
	return names, nil
}

// testEnv app Fiber completa cableada sobre los fakes, con cuentas sembradas
// para los tres roles.
type testEnv struct {
	app      *fiber.App
	store    *fakeStore
	accounts *fakeAccountRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	accounts := &fakeAccountRepo{}
	accounts.seed("Admin", "admin@acme.test", entity.RoleAdmin, adminKey)
	accounts.seed("Manager", "manager@acme.test", entity.RoleManager, managerKey)
	accounts.seed("Viewer", "viewer@acme.test", entity.RoleViewer, viewerKey)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(store),
		ModuleUC:  usecase.NewModuleUseCase(store),
		AccountUC: usecase.NewAccountUseCase(accounts),
		DiagUC: usecase.NewDiagnosticsUseCase(store, usecase.EnvInfo{
			DatabaseURLSet:  true,
			DatabaseNameSet: true,
		}),
		AuthUC: auth.NewAuthUseCase(accounts),
	})

	return &testEnv{app: app, store: store, accounts: accounts}
}

// doJSON lanza una petición con cuerpo JSON opcional y X-API-Key opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, key string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(apphttp.HeaderAPIKey, key)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodifica el cuerpo de la respuesta en out.
func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

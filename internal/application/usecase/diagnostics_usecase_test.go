package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/mini-erp/internal/application/usecase"
)

// sonda falsa del store para el reporte de diagnóstico.
type stubDiag struct {
	pingErr error
	listErr error
	names   []string
}

func (s *stubDiag) Ping(context.Context) error { return s.pingErr }

func (s *stubDiag) ListCollections(_ context.Context, limit int) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.names) > limit {
		return s.names[:limit], nil
	}
	return s.names, nil
}

func TestReport_Conectado(t *testing.T) {
	uc := usecase.NewDiagnosticsUseCase(
		&stubDiag{names: []string{"company", "module"}},
		usecase.EnvInfo{DatabaseURLSet: true, DatabaseNameSet: true},
	)
	out := uc.Report(context.Background())

	assert.Equal(t, "✅ Running", out.Backend)
	assert.Equal(t, "✅ Connected & Working", out.Database)
	assert.Equal(t, "Connected", out.ConnectionStatus)
	assert.Equal(t, []string{"company", "module"}, out.Collections)
	assert.Equal(t, "✅ Set", out.DatabaseURL)
	assert.Equal(t, "✅ Set", out.DatabaseName)
}

func TestReport_PingFalla_DegradaSinError(t *testing.T) {
	uc := usecase.NewDiagnosticsUseCase(
		&stubDiag{pingErr: errors.New("server selection timeout")},
		usecase.EnvInfo{},
	)
	out := uc.Report(context.Background())

	assert.Contains(t, out.Database, "❌ Error:")
	assert.Equal(t, "Not Connected", out.ConnectionStatus)
	assert.Empty(t, out.Collections)
	assert.NotNil(t, out.Collections, "collections es lista vacía, no null")
	assert.Equal(t, "❌ Not Set", out.DatabaseURL)
	assert.Equal(t, "❌ Not Set", out.DatabaseName)
}

// Conectado pero el listado de colecciones falla → estado intermedio.
func TestReport_ListadoFalla(t *testing.T) {
	uc := usecase.NewDiagnosticsUseCase(
		&stubDiag{listErr: errors.New("not authorized on db")},
		usecase.EnvInfo{},
	)
	out := uc.Report(context.Background())

	assert.Contains(t, out.Database, "⚠️ Connected but Error:")
	assert.Equal(t, "Connected", out.ConnectionStatus)
}

// Los mensajes de error se truncan a 50 caracteres en el reporte.
func TestReport_TruncaMensajesLargos(t *testing.T) {
	long := strings.Repeat("x", 200)
	uc := usecase.NewDiagnosticsUseCase(
		&stubDiag{pingErr: errors.New(long)},
		usecase.EnvInfo{},
	)
	out := uc.Report(context.Background())

	assert.Equal(t, "❌ Error: "+strings.Repeat("x", 50), out.Database)
}

// Se reportan a lo sumo 10 colecciones.
func TestReport_MaximoDiezColecciones(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = "col" + string(rune('a'+i))
	}
	uc := usecase.NewDiagnosticsUseCase(&stubDiag{names: names}, usecase.EnvInfo{})
	out := uc.Report(context.Background())

	assert.Len(t, out.Collections, 10)
}

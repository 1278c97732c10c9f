package usecase

import (
	"context"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// diagCollectionsLimit máximo de nombres de colecciones en el reporte.
const diagCollectionsLimit = 10

// EnvInfo indica qué settings de conexión venían en el entorno del proceso.
type EnvInfo struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// DiagnosticsUseCase arma el reporte de estado del endpoint /test.
// Es el único punto del sistema donde los errores del store se tragan a
// propósito: el reporte degrada a texto descriptivo y nunca retorna error.
type DiagnosticsUseCase struct {
	diag repository.StoreDiagnostics
	env  EnvInfo
}

// NewDiagnosticsUseCase construye el caso de uso de diagnóstico.
func NewDiagnosticsUseCase(diag repository.StoreDiagnostics, env EnvInfo) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{diag: diag, env: env}
}

// Report sondea el store y devuelve el estado. Nunca falla.
func (uc *DiagnosticsUseCase) Report(ctx context.Context) dto.DiagnosticsResponse {
	out := dto.DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if uc.diag != nil {
		if err := uc.diag.Ping(ctx); err != nil {
			out.Database = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			out.Database = "✅ Available"
			out.ConnectionStatus = "Connected"
			names, err := uc.diag.ListCollections(ctx, diagCollectionsLimit)
			if err != nil {
				out.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
			} else {
				out.Database = "✅ Connected & Working"
				if names != nil {
					out.Collections = names
				}
			}
		}
	}

	out.DatabaseURL = setMark(uc.env.DatabaseURLSet)
	out.DatabaseName = setMark(uc.env.DatabaseNameSet)
	return out
}

func setMark(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package dto

// DiagnosticsResponse estado del backend y del document store para /test.
// Los campos son strings descriptivos: el endpoint nunca falla, degrada el
// estado a texto aunque el store esté caído.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

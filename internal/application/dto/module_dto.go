package dto

// ToggleModuleRequest entrada para registrar el toggle de un módulo.
// El toggle inserta siempre un evento nuevo, nunca actualiza uno existente.
// Enabled es puntero para distinguir false explícito de campo ausente:
// los tres campos son requeridos.
type ToggleModuleRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1"`
	Enabled   *bool  `json:"enabled" validate:"required"`
}

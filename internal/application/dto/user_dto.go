package dto

// CreateUserRequest entrada para crear una cuenta de usuario.
type CreateUserRequest struct {
	Name      string  `json:"name" validate:"required,min=1"`
	Email     string  `json:"email" validate:"required,email"`
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id"`
}

// CreateUserResponse salida de la creación: el api_key se devuelve aquí y en
// ningún otro lugar (única oportunidad de verlo tras crear la cuenta).
type CreateUserResponse struct {
	ID     string `json:"id"`
	APIKey string `json:"api_key"`
}

// IssueKeyRequest entrada para reemitir la llave de una cuenta por email.
type IssueKeyRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueKeyResponse salida de la reemisión: la nueva llave. La anterior queda
// inválida de inmediato, sin período de gracia.
type IssueKeyResponse struct {
	APIKey string `json:"api_key"`
}

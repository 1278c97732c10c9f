package dto

// CreateCompanyRequest entrada para crear una empresa.
// Industry y Country son opcionales y se persisten como null si no vienen.
type CreateCompanyRequest struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Industry *string  `json:"industry"`
	Country  *string  `json:"country"`
	Modules  []string `json:"modules"`
}

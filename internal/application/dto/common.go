package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de las operaciones de creación: id asignado por el
// store más un mensaje corto.
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

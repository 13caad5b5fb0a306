package dto

// ErrorResponse corpo padrão de erro da API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo padrão de confirmação.
type MessageResponse struct {
	Message string `json:"message"`
}

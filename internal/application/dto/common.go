package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// MessageResponse respuesta simple con mensaje legible (operaciones admin).
type MessageResponse struct {
	Message string `json:"message"`
}

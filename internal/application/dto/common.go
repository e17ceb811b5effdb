package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorResponse violación de una regla sobre un campo.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormErrorResponse cuerpo 400 de validación: todas las violaciones agrupadas por ruta de campo.
type FormErrorResponse struct {
	Code        string               `json:"code"`
	Message     string               `json:"message"`
	ObjectName  string               `json:"objectName"`
	FieldErrors []FieldErrorResponse `json:"fieldErrors"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

package dto

// Response envoltorio uniforme de la API: {success, message?, data?}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// MutationResult resultado uniforme de create/update/delete de los managers.
// ID solo se llena en creaciones exitosas.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
}

// OK construye un resultado exitoso.
func OK(message string) MutationResult {
	return MutationResult{Success: true, Message: message}
}

// Fail construye un resultado fallido con mensaje legible.
func Fail(message string) MutationResult {
	return MutationResult{Success: false, Message: message}
}

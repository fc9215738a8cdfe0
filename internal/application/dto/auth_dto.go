package dto

// LoginRequest credenciales de entrada para login (admin o usuario final).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IdentityResponse foto del usuario autenticado adjunta a la sesión.
type IdentityResponse struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida de un login exitoso.
type LoginResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token"`
	User    IdentityResponse `json:"user"`
}

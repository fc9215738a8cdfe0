package dto

// UserResponse proyección de un usuario (sin password).
type UserResponse struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	RoleName string `json:"role_name"`
}

// CreateUserRequest entrada para crear un usuario (password en claro, se hashea en el use case).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleName string `json:"role_name"`
}

// UpdateUserRequest entrada para actualizar un usuario. Campos nil no se tocan;
// Password se re-hashea antes de persistir.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	RoleName *string `json:"role_name"`
}

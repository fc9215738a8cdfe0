package dto

// RoleResponse proyección de un rol.
type RoleResponse struct {
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
}

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	RoleName string `json:"role_name"`
}

// UpdateRoleRequest entrada para actualizar un rol. Campos nil no se tocan.
type UpdateRoleRequest struct {
	RoleName *string `json:"role_name"`
}

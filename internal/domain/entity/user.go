package entity

// Roles administrativos conocidos por el sistema. Cualquier otro rol
// (por ejemplo "End User") no tiene acceso al panel administrativo.
const (
	RoleSystemAdmin      = "System Admin"
	RoleApplicationAdmin = "Application Admin"
	RoleProductAdmin     = "Product Admin"
	RoleOrderAdmin       = "Order Admin"
	RoleEndUser          = "End User"
)

// AdminRoles roles con acceso al login administrativo.
var AdminRoles = []string{RoleSystemAdmin, RoleApplicationAdmin, RoleProductAdmin, RoleOrderAdmin}

// User representa un usuario del sistema. Cada usuario tiene exactamente un rol.
type User struct {
	ID           int
	Username     string // único
	PasswordHash string // digest SHA-256 en hex, nunca en claro después de persistir
	RoleID       int
	RoleName     string // se llena con JOIN a roles en las consultas que lo necesitan
}

package entity

// Role representa un rol del sistema. El nombre es único.
// Un rol referenciado por usuarios no debería eliminarse (no se valida aquí, ver RoleUseCase).
type Role struct {
	ID   int
	Name string
}

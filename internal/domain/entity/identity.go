package entity

// Identity es la foto de un usuario autenticado, capturada al momento del login.
// Un cambio de rol posterior no afecta sesiones ya emitidas.
type Identity struct {
	UserID   int
	Username string
	Role     string
}

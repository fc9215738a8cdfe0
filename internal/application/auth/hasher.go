package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword calcula el digest SHA-256 en hex de una contraseña.
// El mismo algoritmo se usa al aprovisionar usuarios (cmd/seed) y al verificar
// credenciales: el digest es determinista y se compara byte a byte.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

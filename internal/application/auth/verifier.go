package auth

import (
	"context"
	"crypto/subtle"

	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
)

// CredentialVerifier verifica credenciales contra los digests almacenados.
// Operación de solo lectura; todos los caminos de fallo son silenciosos:
// "usuario inexistente" y "contraseña incorrecta" son indistinguibles desde
// afuera para no permitir enumeración de usernames.
type CredentialVerifier struct {
	users repository.UserRepository
}

// NewCredentialVerifier construye el verificador.
func NewCredentialVerifier(users repository.UserRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// Verify valida username/password y que el rol resuelto esté en allowedRoles.
// Devuelve (nil, nil) en cualquier fallo de credenciales o de rol; el error
// solo es no-nil ante fallos de infraestructura.
func (v *CredentialVerifier) Verify(ctx context.Context, username, password string, allowedRoles []string) (*entity.Identity, error) {
	user, err := v.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) != 1 {
		return nil, nil
	}

	allowed := false
	for _, role := range allowedRoles {
		if user.RoleName == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, nil
	}

	return &entity.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.RoleName,
	}, nil
}

package auth

import (
	"context"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// AuthUseCase casos de uso de autenticación: login (admin y usuario final) y logout.
type AuthUseCase struct {
	verifier *CredentialVerifier
	sessions SessionStore
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(verifier *CredentialVerifier, sessions SessionStore, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{verifier: verifier, sessions: sessions, log: log}
}

// Login verifica credenciales contra el conjunto de roles permitidos, emite una
// sesión y devuelve token + identidad. Cualquier fallo (usuario inexistente,
// contraseña incorrecta, rol fuera del conjunto, error de infraestructura)
// se reporta como domain.ErrUnauthorized; la causa interna solo va al log.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, allowedRoles []string) (*dto.LoginResponse, error) {
	identity, err := uc.verifier.Verify(ctx, in.Username, in.Password, allowedRoles)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "login").Msg("fallo de infraestructura verificando credenciales")
		return nil, domain.ErrUnauthorized
	}
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := uc.sessions.Create(*identity)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "login").Msg("no se pudo emitir la sesión")
		return nil, domain.ErrUnauthorized
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.IdentityResponse{
			UserID:   identity.UserID,
			Username: identity.Username,
			Role:     identity.Role,
		},
	}, nil
}

// Logout revoca la sesión. Revocar un token desconocido también es éxito.
func (uc *AuthUseCase) Logout(token string) {
	uc.sessions.Revoke(token)
}

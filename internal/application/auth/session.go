package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// tokenBytes longitud en bytes del token de sesión (64 caracteres hex).
const tokenBytes = 32

// SessionStore mapea tokens opacos a identidades autenticadas.
// Las sesiones no expiran: viven hasta un Revoke explícito (logout).
type SessionStore interface {
	// Create genera un token único entre las sesiones vivas y guarda la identidad.
	Create(identity entity.Identity) (string, error)
	// Lookup devuelve la identidad asociada al token, o false si no existe.
	Lookup(token string) (entity.Identity, bool)
	// Revoke elimina la sesión. Revocar un token ausente es un no-op.
	Revoke(token string)
}

// MemorySessionStore implementación en memoria protegida por RWMutex.
// Segura para uso concurrente desde múltiples requests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Identity
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore construye el store vacío.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]entity.Identity)}
}

// Create genera un token aleatorio (crypto/rand, independiente de las credenciales
// del usuario) y guarda la foto de identidad. Reintenta ante la improbable colisión.
func (s *MemorySessionStore) Create(identity entity.Identity) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		token, err := newToken()
		if err != nil {
			return "", err
		}
		if _, exists := s.sessions[token]; exists {
			continue
		}
		s.sessions[token] = identity
		return token, nil
	}
}

// Lookup busca la sesión. O(1).
func (s *MemorySessionStore) Lookup(token string) (entity.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.sessions[token]
	return identity, ok
}

// Revoke elimina la sesión si existe.
func (s *MemorySessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar token de sesión: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package auth

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

func testIdentity(id int) entity.Identity {
	return entity.Identity{UserID: id, Username: fmt.Sprintf("user%d", id), Role: "Product Admin"}
}

func TestMemorySessionStore_CreateLookupRevoke(t *testing.T) {
	store := NewMemorySessionStore()

	token, err := store.Create(testIdentity(1))
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, token, 64, "token de 32 bytes aleatorios en hex")

	identity, ok := store.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, 1, identity.UserID)
	assert.Equal(t, "user1", identity.Username)
	assert.Equal(t, "Product Admin", identity.Role)

	store.Revoke(token)
	_, ok = store.Lookup(token)
	assert.False(t, ok, "un token revocado deja de resolver")
}

func TestMemorySessionStore_RevokeDobleEsNoOp(t *testing.T) {
	store := NewMemorySessionStore()
	token, err := store.Create(testIdentity(1))
	require.NoError(t, err)

	store.Revoke(token)
	store.Revoke(token) // segunda revocación: no-op, no panic
	store.Revoke("token-que-nunca-existió")

	_, ok := store.Lookup(token)
	assert.False(t, ok)
}

// Dos logins del mismo usuario con las mismas credenciales producen tokens
// distintos: el token es aleatorio, no derivado de las credenciales.
func TestMemorySessionStore_TokensIndependientesDeCredenciales(t *testing.T) {
	store := NewMemorySessionStore()
	identity := testIdentity(1)

	t1, err := store.Create(identity)
	require.NoError(t, err)
	t2, err := store.Create(identity)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)

	// Ambas sesiones viven de forma independiente.
	store.Revoke(t1)
	_, ok := store.Lookup(t2)
	assert.True(t, ok, "revocar una sesión no afecta la otra del mismo usuario")
}

func TestMemorySessionStore_LookupTokenDesconocido(t *testing.T) {
	store := NewMemorySessionStore()
	_, ok := store.Lookup("0000000000000000000000000000000000000000000000000000000000000000")
	assert.False(t, ok)
}

func TestMemorySessionStore_AccesoConcurrente(t *testing.T) {
	store := NewMemorySessionStore()

	const n = 50
	tokens := make([]string, n)
	var wg sync.WaitGroup

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			token, err := store.Create(testIdentity(i))
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	// Todos los tokens son únicos y resuelven a su identidad.
	seen := make(map[string]bool, n)
	for i, token := range tokens {
		require.NotEmpty(t, token)
		assert.False(t, seen[token], "token repetido")
		seen[token] = true

		identity, ok := store.Lookup(token)
		require.True(t, ok)
		assert.Equal(t, i, identity.UserID)
	}

	// Lecturas y revocaciones concurrentes no deben hacer panic ni corromper el mapa.
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			store.Lookup(tokens[i])
			if i%2 == 0 {
				store.Revoke(tokens[i])
			}
		}(i)
	}
	wg.Wait()

	for i, token := range tokens {
		_, ok := store.Lookup(token)
		assert.Equal(t, i%2 != 0, ok)
	}
}

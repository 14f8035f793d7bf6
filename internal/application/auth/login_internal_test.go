package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/session"
)

func TestLogin_UsuarioInexistenteCompara(t *testing.T) {
	uc := NewAuthUseCase(memory.NewStaffRepository(), session.NewMemoryStore(),
		JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stockwatch-test"})
	var hashes [][]byte
	uc.compare = func(hash, password []byte) error {
		hashes = append(hashes, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.Len(t, hashes, 1, "el usuario inexistente también pasa por bcrypt")
	cost, err := bcrypt.Cost(hashes[0])
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

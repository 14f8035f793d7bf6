package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/auth"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/session"
	pkgjwt "github.com/jhoicas/stockwatch-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() (*auth.AuthUseCase, *memory.StaffRepository, *session.MemoryStore) {
	repo := memory.NewStaffRepository()
	sessions := session.NewMemoryStore()
	uc := auth.NewAuthUseCase(repo, sessions, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "stockwatch-test"})
	return uc, repo, sessions
}

var alice = dto.RegisterRequest{
	Name: "Alice Ruiz", Email: "Alice@Example.com", Username: "alice", Password: "s3creta-larga",
}

func TestRegister_HasheaPassword(t *testing.T) {
	uc, repo, _ := newUseCase()
	resp, err := uc.Register(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, resp.Role)
	assert.Equal(t, "alice@example.com", resp.Email)

	stored, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, alice.Password, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, alice.Password)
}

func TestRegister_Duplicados(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, alice)
	require.NoError(t, err)

	dupUser := alice
	dupUser.Email = "otra@example.com"
	_, err = uc.Register(ctx, dupUser)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	dupEmail := alice
	dupEmail.Username = "alice2"
	_, err = uc.Register(ctx, dupEmail)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc, _, _ := newUseCase()
	corta := alice
	corta.Password = "123"
	_, err := uc.Register(context.Background(), corta)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rol := alice
	rol.Role = "root"
	_, err = uc.Register(context.Background(), rol)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesYToken(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, alice)
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	resp, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: alice.Password})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Staff.Username)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RoleStaff, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestLogout_RevocaSesion(t *testing.T) {
	uc, _, sessions := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, alice)
	require.NoError(t, err)
	resp, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: alice.Password})
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, claims))
	revoked, err := sessions.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, uc.Logout(ctx, nil), domain.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, alice)
	require.NoError(t, err)

	me, err := uc.Me(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice Ruiz", me.Name)

	_, err = uc.Me(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

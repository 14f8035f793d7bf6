package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el usuario no existe, para que Login tarde lo mismo en ambos casos.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("stockwatch-usuario-inexistente"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

// AuthUseCase casos de uso de autenticación: registro, login, logout y sesión actual.
type AuthUseCase struct {
	staffRepo repository.StaffRepository
	sessions  ports.SessionStore
	jwtCfg    JWTConfig
	now       func() time.Time
	compare   func(hash, password []byte) error
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(staffRepo repository.StaffRepository, sessions ports.SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{staffRepo: staffRepo, sessions: sessions, jwtCfg: jwtCfg, now: time.Now,
		compare: bcrypt.CompareHashAndPassword}
}

// Register crea un empleado: hashea password con bcrypt y persiste.
// Devuelve ErrUsernameTaken o ErrEmailAlreadyExists si ya existen.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.StaffResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if existing, err := uc.staffRepo.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := uc.staffRepo.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = username
	}
	staff := &entity.Staff{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	resp := dto.ToStaffResponse(staff)
	return &resp, nil
}

// Login verifica username/password y emite el token de sesión.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := uc.staffRepo.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if staff == nil {
		_ = uc.compare(dummyHash(), []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := uc.compare([]byte(staff.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, staff.Username, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute).UTC(),
		Staff:     dto.ToStaffResponse(staff),
	}, nil
}

// Logout revoca la sesión hasta que su token expire.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.ErrUnauthorized
	}
	ttl := claims.TTL(uc.now())
	if ttl <= 0 {
		return nil
	}
	return uc.sessions.Revoke(ctx, claims.ID, ttl)
}

// Me devuelve el empleado de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, username string) (*dto.StaffResponse, error) {
	staff, err := uc.staffRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToStaffResponse(staff)
	return &resp, nil
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/jwt"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// Locals keys para la sesión en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
	LocalClaims   = "claims"
)

// SessionConfig lo necesario para validar la sesión: secreto JWT, nombre de la cookie
// y el almacén de sesiones revocadas (puede ser nil).
type SessionConfig struct {
	Secret     string
	CookieName string
	Sessions   ports.SessionStore
	Log        *logger.Logger
}

// AuthMiddleware exige una sesión válida. El token se toma de la cookie de sesión o,
// si no está, del header Authorization: Bearer <token>.
func AuthMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, code, msg := extractToken(c, cfg.CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		claims, err := jwt.Parse(cfg.Secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		revoked, err := isRevoked(c, cfg, claims)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
		}
		if revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_REVOKED", Message: "la sesión fue cerrada"})
		}
		setSession(c, claims)
		return c.Next()
	}
}

// OptionalAuth carga la sesión si hay un token válido y continúa como anónimo si no lo hay.
// Un token inválido, expirado o revocado también continúa como anónimo.
func OptionalAuth(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, _, _ := extractToken(c, cfg.CookieName)
		if tokenString == "" {
			return c.Next()
		}
		claims, err := jwt.Parse(cfg.Secret, tokenString)
		if err != nil {
			debug(cfg, c, "token inválido, petición anónima")
			return c.Next()
		}
		revoked, err := isRevoked(c, cfg, claims)
		if err != nil || revoked {
			debug(cfg, c, "sesión revocada o no verificable, petición anónima")
			return c.Next()
		}
		setSession(c, claims)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
		}
		return c.Next()
	}
}

// GetUsername devuelve el username de la sesión ("" si es anónima).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol de la sesión ("" si es anónima).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetClaims devuelve los claims de la sesión o nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

func extractToken(c *fiber.Ctx, cookieName string) (token, code, msg string) {
	if cookieName != "" {
		if v := strings.TrimSpace(c.Cookies(cookieName)); v != "" {
			return v, "", ""
		}
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", "MISSING_TOKEN", "sesión requerida"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "INVALID_TOKEN", "formato: Bearer <token>"
	}
	token = strings.TrimSpace(parts[1])
	if token == "" {
		return "", "MISSING_TOKEN", "token vacío"
	}
	return token, "", ""
}

func isRevoked(c *fiber.Ctx, cfg SessionConfig, claims *jwt.Claims) (bool, error) {
	if cfg.Sessions == nil || claims.ID == "" {
		return false, nil
	}
	return cfg.Sessions.IsRevoked(c.UserContext(), claims.ID)
}

func setSession(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUsername, claims.Username)
	c.Locals(LocalRole, claims.Role)
	c.Locals(LocalClaims, claims)
}

func debug(cfg SessionConfig, c *fiber.Ctx, msg string) {
	if cfg.Log == nil {
		return
	}
	cfg.Log.Debug().Str("path", c.Path()).Msg(msg)
}

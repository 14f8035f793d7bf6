package ports

import (
	"context"
	"time"
)

// SessionStore registra las sesiones cerradas (jti) hasta que el token expire.
// Implementaciones: Redis (producción) y memoria (un solo proceso).
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

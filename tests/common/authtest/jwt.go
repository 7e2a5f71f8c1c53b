//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"seat-reservation/internal/domain/auth"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role auth.Role) string {
	t.Helper()
	service := jwt.NewService(jwt.Options{Secret: h.cfg.Secret, TTL: h.cfg.Duration, Issuer: h.cfg.Issuer})
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role auth.Role) string {
	t.Helper()
	service := jwt.NewService(jwt.Options{Secret: h.cfg.Secret, TTL: -time.Minute, Issuer: h.cfg.Issuer})
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) NewUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, auth.RoleUser)
}

func (h *JWTHelper) NewAdmin(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, auth.RoleAdmin)
}

package bootstrap

import (
	"log/slog"

	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/jwt"
	"seat-reservation/internal/usecase"

	"go.uber.org/fx"
)

// AuthModule verifies the identity provider's tokens; this service never
// manages users itself.
var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
		usecase.NewTokenValidator,
	),
)

func NewJWTService(cfg config.Config, logger *slog.Logger) *jwt.Service {
	if cfg.JWT.Issuer == "" {
		logger.Warn("JWT_ISSUER not set, tokens from any issuer sharing the secret are accepted")
	}
	return jwt.NewService(jwt.Options{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.Duration,
		Issuer: cfg.JWT.Issuer,
		Leeway: cfg.JWT.Leeway,
	})
}

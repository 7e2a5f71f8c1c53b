package jwt

import (
	"errors"
	"time"

	"seat-reservation/internal/domain/auth"
	"seat-reservation/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

// Claims mirror what the identity provider signs: the caller and its role.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Options struct {
	Secret string
	TTL    time.Duration
	// Issuer, when set, is stamped on issued tokens and required on validated ones.
	Issuer string
	// Leeway absorbs clock skew between the provider and this service.
	Leeway time.Duration
}

type Service struct {
	opts Options
	now  func() time.Time
}

func NewService(opts Options) *Service {
	return &Service{opts: opts, now: time.Now}
}

// GenerateToken issues an HS256 token. The engine itself only validates
// tokens; issuing is used by tooling and tests standing in for the provider.
func (s *Service) GenerateToken(userID uuid.UUID, role auth.Role) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.opts.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.opts.Leeway),
		jwt.WithTimeFunc(s.now),
	}
	if s.opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.opts.Issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(s.opts.Secret), nil
	}, parserOpts...)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errs.Wrapf(ErrExpiredToken, "%v", err)
	case err != nil:
		return nil, errs.Wrapf(ErrInvalidToken, "%v", err)
	case !token.Valid || claims.UserID == uuid.Nil:
		return nil, ErrInvalidToken
	}

	return claims, nil
}

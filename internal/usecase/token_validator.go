package usecase

import (
	"seat-reservation/internal/domain/auth"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

// TokenValidator resolves a bearer token to the caller it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, auth.Role, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Service
}

func NewTokenValidator(verifier *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{verifier: verifier}
}

// A signed token carrying a role this service does not know is rejected like
// any other invalid token.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, auth.Role, error) {
	claims, err := t.verifier.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, jwt.ErrInvalidToken)
	}
	return claims.UserID, role, nil
}

//go:build unit

package jwt

import (
	"testing"
	"time"

	"seat-reservation/internal/domain/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(mut ...func(*Options)) *Service {
	opts := Options{Secret: "secret", TTL: time.Hour}
	for _, m := range mut {
		m(&opts)
	}
	return NewService(opts)
}

func TestService_RoundTrip(t *testing.T) {
	svc := newTestService(func(o *Options) { o.Issuer = "identity.example" })
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, auth.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "identity.example", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		svc := newTestService(func(o *Options) { o.TTL = time.Minute })
		svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := svc.GenerateToken(userID, auth.RoleUser)
		require.NoError(t, err)

		_, err = newTestService().ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("expired within leeway is accepted", func(t *testing.T) {
		issuer := newTestService(func(o *Options) { o.TTL = time.Minute })
		issuer.now = func() time.Time { return time.Now().Add(-time.Minute - 10*time.Second) }
		token, err := issuer.GenerateToken(userID, auth.RoleUser)
		require.NoError(t, err)

		_, err = newTestService(func(o *Options) { o.Leeway = 30 * time.Second }).ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newTestService().GenerateToken(userID, auth.RoleUser)
		require.NoError(t, err)

		_, err = newTestService(func(o *Options) { o.Secret = "other" }).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := newTestService(func(o *Options) { o.Issuer = "someone-else" }).GenerateToken(userID, auth.RoleUser)
		require.NoError(t, err)

		_, err = newTestService(func(o *Options) { o.Issuer = "identity.example" }).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non-HMAC algorithm", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: userID, Role: "user"})
		signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newTestService().ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{UserID: userID, Role: "user"})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = newTestService().ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := newTestService().GenerateToken(uuid.Nil, auth.RoleUser)
		require.NoError(t, err)

		_, err = newTestService().ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := newTestService().ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"seat-reservation/internal/domain/auth"
	"seat-reservation/internal/handler/middleware"
	"seat-reservation/tests/common/httptest"
	usecasemock "seat-reservation/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockValidator)

	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	}

	s.router.GET("/me", m.RequireAuth(), whoami)
	s.router.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(auth.RoleAdmin), whoami)
	s.router.GET("/misconfigured", m.RequireRoleAtLeast(auth.RoleUser), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: puts the caller into the context", func() {
		userID := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(userID, auth.RoleUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["user_id"])
		s.Equal("user", body["role"])
	})

	s.Run("error: 401 without a bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 when the token does not validate", func() {
		s.mockValidator.EXPECT().ValidateToken("expired").
			Return(uuid.Nil, auth.Role(""), errors.New("token is expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "expired")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	s.Run("success: admin passes", func() {
		s.mockValidator.EXPECT().ValidateToken("admin-token").Return(uuid.New(), auth.RoleAdmin, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 403 for a plain user", func() {
		s.mockValidator.EXPECT().ValidateToken("user-token").Return(uuid.New(), auth.RoleUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "user-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 500 when mounted without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

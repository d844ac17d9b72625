package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
)

const (
	UserIDKey    = "user_id"
	BearerPrefix = "Bearer "
)

type TokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

type AuthMiddleware struct {
	jwtSvc TokenValidator
}

func NewAuthMiddleware(jwtSvc TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.AbortWithError(c, apperror.Unauthorized("authorization header required"))
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.AbortWithError(c, apperror.Unauthorized("invalid authorization format"))
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		userID, err := m.jwtSvc.ValidateAccessToken(token)
		if errors.Is(err, domain.ErrTokenExpired) {
			httputil.AbortWithError(c, apperror.Unauthorized("token expired"))
			return
		}
		if err != nil {
			httputil.AbortWithError(c, apperror.Unauthorized("invalid token"))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user set by RequireAuth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

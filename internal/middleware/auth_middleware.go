package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/pkg/auth"
)

// claimsKey is the gin context key the verified token claims live under
const claimsKey = "authClaims"

// AuthMiddleware handles authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and stores its claims in the context.
// A missing token is 401; a tampered or expired one is 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminRequired rejects requests whose verified claims are not an admin.
// JWTAuth must run earlier in the chain.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		if claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Admin access required"))
			return
		}

		c.Next()
	}
}

// GetClaims returns the verified token claims stored by JWTAuth
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*auth.Claims)
	return claims, ok
}

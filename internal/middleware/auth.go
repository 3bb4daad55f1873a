package middleware

import (
	"net/http"
	"strings"

	"golang-storefront-gateway/pkg/auth"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// AuthRequired validates the bearer token and stores an explicit Session in
// the request context. Nothing downstream reads token state from anywhere
// else.
func (a *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := a.jwtManager.ValidateToken(tokenParts[1])
		if err != nil || claims.TokenType != auth.AccessToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(sessionKey, auth.Session{
			UserID: claims.UserID,
			Role:   claims.Role,
			Email:  claims.Email,
			Token:  tokenParts[1],
		})
		c.Next()
	}
}

// RoleRequired checks if the session user has one of the required roles
func (a *AuthMiddleware) RoleRequired(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role information missing"})
			c.Abort()
			return
		}

		for _, requiredRole := range requiredRoles {
			if session.Role == requiredRole {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// AdminRequired middleware ensures user is an admin
func (a *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return a.RoleRequired("admin")
}

// GetSession extracts the session placed by AuthRequired.
func GetSession(c *gin.Context) (auth.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return auth.Session{}, false
	}
	session, ok := value.(auth.Session)
	return session, ok
}

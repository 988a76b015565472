package middleware

import (
	"net/http"
	"strings"

	"lucky-money/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"

	SessionCookieName = "session_token"
)

type authOptions struct {
	signInPath string
}

type AuthOption func(*authOptions)

// WithSignInRedirect sends browser navigations without a usable session to
// the sign-in page instead of answering 401.
func WithSignInRedirect(path string) AuthOption {
	return func(o *authOptions) {
		o.signInPath = path
	}
}

// AuthMiddleware requires a valid session token and stores the caller's id
// and role in the gin context.
func AuthMiddleware(jwtService *jwt.Service, opts ...AuthOption) gin.HandlerFunc {
	var o authOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			reject(c, o.signInPath, "Authorization header required")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			reject(c, o.signInPath, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is present and
// lets anonymous requests through untouched.
func OptionalAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := extractToken(c); ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextUserRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware. The role is taken from the token
// claims, not reloaded from storage.
func RequireRole(role string, homePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(ContextUserRole)
		if current == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if current != role {
			if homePath != "" && wantsHTML(c) {
				c.Redirect(http.StatusFound, homePath)
				c.Abort()
				return
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func reject(c *gin.Context, signInPath, message string) {
	if signInPath != "" && wantsHTML(c) {
		c.Redirect(http.StatusFound, signInPath)
		c.Abort()
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

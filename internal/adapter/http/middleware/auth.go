package middleware

import (
	"net/http"
	"strings"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"
	"autokorea/pkg"

	"github.com/gin-gonic/gin"
)

// claimsKey is where RequireAuth stores the validated token claims in the
// gin context.
const claimsKey = "claims"

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authorization header required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// RequireAuth validates the Bearer token and stores the claims for the
// handlers downstream. Every route except login and ping sits behind it.
func RequireAuth(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions. It assumes RequireAuth already ran.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the claims RequireAuth stored, if any.
func ClaimsFromContext(c *gin.Context) (interfaces.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return interfaces.Claims{}, false
	}
	claims, ok := v.(interfaces.Claims)
	return claims, ok
}

// IsAdmin reports whether the current session carries the admin role.
func IsAdmin(c *gin.Context) bool {
	claims, ok := ClaimsFromContext(c)
	return ok && claims.Role == entities.RoleAdmin
}

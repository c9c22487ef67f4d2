package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/observability"
)

// bearerAuth guards machine-to-machine endpoints with a shared secret.
// An unset secret fails closed with 500 so a misconfigured deployment never
// accepts unauthenticated writes.
func bearerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			observability.AuthFailures.WithLabelValues("not_configured").Inc()
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "API not configured"})
			return
		}

		token := extractBearerToken(c)
		if token == "" {
			observability.AuthFailures.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			observability.AuthFailures.WithLabelValues("mismatch").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// extractBearerToken extracts the token from the Authorization header.
// Returns an empty string when the header is missing or not a bearer token.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

func validAPIKey(expected, provided string) bool {
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}

// RequireAPIKey rejects requests whose X-API-Key header does not match apiKey.
// An empty apiKey rejects every request.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !validAPIKey(apiKey, c.GetHeader(apiKeyHeader)) {
			slog.WarnContext(c.Request.Context(), "rejected request with invalid or missing API key",
				slog.String("path", c.FullPath()),
				slog.String("client_ip", c.ClientIP()),
			)
			respondError(c, http.StatusUnauthorized, "invalid or missing API key")
			return
		}
		c.Next()
	}
}

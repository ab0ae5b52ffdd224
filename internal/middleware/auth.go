package middleware

import (
	"net/http"
	"strings"

	"tcgurt/internal/identity"
	"tcgurt/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	callerIDKey   = "caller_id"
	sessionCookie = "__session"
)

// RequireAuth 驗證 token 並把 caller id 放進 gin context，失敗回 401
func RequireAuth(verifier identity.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.WithComponent("middleware").Info("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(callerIDKey, userID)
		c.Next()
	}
}

// CallerID 取出 RequireAuth 放入的 user id
func CallerID(c *gin.Context) (string, bool) {
	v, ok := c.Get(callerIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}

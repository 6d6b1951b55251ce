package middleware

import (
	"net/http"
	"strings"

	"scene-backend/internal/services"
	"scene-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token from the Authorization header,
// falling back to the access_token cookie set on login.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			token, _ = c.Cookie("access_token")
		}

		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized"))
			c.Abort()
			return
		}

		ctx := services.WithClaimsContext(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

package middleware

import (
	"net/http"
	"strings"

	"monedero/config"
	"monedero/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the JWT and sets CompanyUserID, CompanyID and Email
// in the request context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("company_user_id", claims.CompanyUserID)
		c.Set("company_id", claims.CompanyID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetCompanyID returns the authenticated user's company (must be used after
// AuthRequired).
func GetCompanyID(c *gin.Context) uint {
	v, _ := c.Get("company_id")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

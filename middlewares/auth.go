package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// enforces them. Claims land in the gin context for utils/ctx.go accessors.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid claims"})
			c.Abort()
			return
		}

		var role string
		if v, ok := claims["role"].(string); ok {
			role = v
		}
		var userID uint
		if v, ok := claims["userId"].(float64); ok {
			userID = uint(v)
		}
		var restaurantID uint
		if v, ok := claims["restaurantId"].(float64); ok {
			restaurantID = uint(v)
		}

		c.Set("userId", userID)
		c.Set("role", role)
		c.Set("restaurantId", restaurantID)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// RequireRestaurant rejects tokens without a tenant (e.g. SUPER_ADMIN hitting
// tenant-scoped endpoints).
func RequireRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get("restaurantId")
		id, _ := v.(uint)
		if id == 0 {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "restaurant access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

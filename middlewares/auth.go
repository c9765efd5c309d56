package middlewares

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/utils"
)

// AuthMiddleware verifies the bearer token and (if given) enforces a role
// allow-list. Token validity requires both a good signature and a live
// session row; logout deletes the row, which kills the token immediately.
func AuthMiddleware(db *gorm.DB, secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		sessionID, err := utils.ParseToken(tokenStr, secret)
		if err != nil || sessionID == "" {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		var session entity.Session
		err = db.Preload("User").Preload("User.Role").
			Where("id = ?", sessionID).First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && session.ExpiresAt.Before(time.Now())) {
			resp.Unauthorized(c, "session expired")
			c.Abort()
			return
		}
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		user := session.User
		if user.State != entity.StateActive {
			resp.Unauthorized(c, "account inactive")
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("roleId", user.RoleID)
		c.Set("role", user.Role.Name)
		c.Set("email", user.Email)
		c.Set("sessionId", session.ID)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role.Name == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

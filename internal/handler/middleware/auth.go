package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-management-system/internal/pkg/jwt"
	"hotel-management-system/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxGuestIDKey = "guest_id"
	ctxStaffKey   = "staff"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxGuestIDKey, claims.GuestID)
		c.Set(ctxStaffKey, claims.Staff)
		c.Next()
	}
}

// RequireStaff must be chained after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !actor.Staff {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Staff capability required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetGuestID(c *gin.Context) (uuid.UUID, bool) {
	guestID, exists := c.Get(ctxGuestIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := guestID.(uuid.UUID)
	return id, ok
}

func GetActor(c *gin.Context) (commands.Actor, bool) {
	guestID, ok := GetGuestID(c)
	if !ok {
		return commands.Actor{}, false
	}

	staff, _ := c.Get(ctxStaffKey)
	isStaff, _ := staff.(bool)

	return commands.Actor{GuestID: guestID, Staff: isStaff}, true
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

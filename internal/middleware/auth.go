package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cardcast-dev/cardcast/db"
	"github.com/cardcast-dev/cardcast/internal/auth"
	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
)

type AuthenticatedUser struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	MustResetPassword bool   `json:"must_reset_password"`
	IsStaff           bool   `json:"is_staff"`
}

// AuthMiddleware accepts a bearer token or, as a fallback, the cookie set
// at login, and loads the active account into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)

		if tokenString == "" {
			if cookie, err := ctx.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		userID, err := auth.VerifyJWT(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User

		if err := db.DB.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:                user.ID,
			Username:          user.Username,
			Name:              user.Name,
			Email:             user.Email,
			MustResetPassword: user.MustResetPassword,
			IsStaff:           user.IsStaff,
		})
		ctx.Next()
	}
}

// PasswordResetGate refuses requests from accounts that still carry the
// forced-reset flag. Mount it after AuthMiddleware on every group except
// the auth endpoints that let the user complete the reset.
func PasswordResetGate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if user.MustResetPassword {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Password change required"})
			return
		}

		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

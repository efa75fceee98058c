package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cardcast-dev/cardcast/internal/auth"
	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/services"
	"github.com/cardcast-dev/cardcast/internal/types"
	"github.com/cardcast-dev/cardcast/internal/utils"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

var Domain = os.Getenv("DOMAIN")

// Register creates an account. New accounts carry must_reset_password and
// are locked out of the rest of the API until they change their password.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	token, err := h.issueToken(ctx, user)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	token, err := h.issueToken(ctx, user)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

// ChangePassword completes the forced-reset flow; it stays reachable while
// the reset gate blocks everything else.
func (h *AuthHandler) ChangePassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ChangePasswordRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.ChangePassword(currentUser.ID, req.CurrentPassword, req.NewPassword)

	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	user.MustResetPassword = false

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
		"user":    userResponse(user),
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:                currentUser.ID,
			Username:          currentUser.Username,
			Email:             currentUser.Email,
			Name:              currentUser.Name,
			MustResetPassword: currentUser.MustResetPassword,
		},
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) issueToken(ctx *gin.Context, user *models.User) (string, error) {
	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		return "", err
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	return token, nil
}

func userResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Name:              user.Name,
		MustResetPassword: user.MustResetPassword,
	}
}

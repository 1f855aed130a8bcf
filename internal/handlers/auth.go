package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/cardiotrack/cardiotrack/internal/auth"
	"github.com/cardiotrack/cardiotrack/internal/models"
	"github.com/cardiotrack/cardiotrack/internal/repository"
	"github.com/cardiotrack/cardiotrack/internal/types"
	"github.com/cardiotrack/cardiotrack/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	Email          string `form:"email" json:"email" binding:"required,email"`
	Password       string `form:"password" json:"password" binding:"required,min=8"`
	Specialization string `form:"specialization" json:"specialization"`
	Hospital       string `form:"hospital" json:"hospital"`
	Contact        string `form:"contact" json:"contact"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

type AuthHandler struct {
	users repository.UserRepository
}

func NewAuthHandler(users repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) RegisterPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "register", "flash": takeFlash(ctx)})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind registration form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	_, err := h.users.FindByEmail(req.Email)

	if err == nil {
		setFlash(ctx, "Email already exists!")
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Hospital:       req.Hospital,
		Contact:        req.Contact,
		PasswordHash:   passwordHash,
	}

	if err := h.users.Create(&newUser); err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setFlash(ctx, "Registration successful! Please log in.")
	ctx.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "login", "flash": takeFlash(ctx)})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind login form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Login matches on display name, not the unique email column. First
	// match wins when names collide; see DESIGN.md before changing this.
	user, err := h.users.FindByName(req.Username)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password!"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password!"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
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

	ctx.Redirect(http.StatusFound, "/")
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

	setFlash(ctx, "You have been logged out.")
	ctx.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Profile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.users.FindByID(currentUser.ID)

	if err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Specialization: user.Specialization,
			Hospital:       user.Hospital,
			Contact:        user.Contact,
		},
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/cardiotrack/cardiotrack/internal/auth"
	"github.com/cardiotrack/cardiotrack/internal/repository"
	"github.com/cardiotrack/cardiotrack/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthMiddleware resolves the session token from the "token" cookie or an
// Authorization: Bearer header, verifies it, and loads the doctor it names.
// Unauthenticated browsers are redirected to the login route instead of
// receiving an error.
func AuthMiddleware(users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)

		if tokenString == "" {
			redirectToLogin(ctx)
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			redirectToLogin(ctx)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			redirectToLogin(ctx)
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			redirectToLogin(ctx)
			return
		}

		user, err := users.FindByID(uint(userIDFloat))

		if err != nil {
			redirectToLogin(ctx)
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

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

func redirectToLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/login")
	ctx.Abort()
}

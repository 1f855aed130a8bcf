package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cardiotrack/cardiotrack/internal/auth"
	"github.com/cardiotrack/cardiotrack/internal/middleware"
	"github.com/cardiotrack/cardiotrack/internal/models"
	"github.com/cardiotrack/cardiotrack/internal/repository"
	"github.com/cardiotrack/cardiotrack/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())
}

func newAuthRouter(users repository.UserRepository) *gin.Engine {
	h := NewAuthHandler(users)

	r := gin.New()
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)

	return r
}

func registerForm() url.Values {
	return url.Values{
		"name":           {"Alice"},
		"email":          {"a@x.com"},
		"password":       {"password1"},
		"specialization": {"Cardiology"},
		"hospital":       {"General"},
		"contact":        {"555-0100"},
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	w := postForm(r, "/register", registerForm())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "Cardiology", user.Specialization)
	assert.NotEqual(t, "password1", user.PasswordHash, "password must never be stored in plaintext")
	assert.True(t, auth.CheckPassword("password1", user.PasswordHash))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	form := registerForm()
	form.Set("email", "  Alice@X.Com ")

	w := postForm(r, "/register", form)
	assert.Equal(t, http.StatusFound, w.Code)

	_, err := repo.FindByEmail("alice@x.com")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmailNeverInserts(t *testing.T) {
	created := 0
	repo := &MockUserRepository{
		FindByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{Email: email}, nil
		},
		CreateFunc: func(user *models.User) error {
			created++
			return nil
		},
	}
	r := newAuthRouter(repo)

	w := postForm(r, "/register", registerForm())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))
	assert.Zero(t, created, "duplicate email must not create a second user")
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(form url.Values)
	}{
		{"missing email", func(form url.Values) { form.Del("email") }},
		{"malformed email", func(form url.Values) { form.Set("email", "not-an-email") }},
		{"short password", func(form url.Values) { form.Set("password", "short") }},
		{"missing name", func(form url.Values) { form.Del("name") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(newFakeUserRepo())

			form := registerForm()
			tt.mutate(form)

			w := postForm(r, "/register", form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginFailsGenerically(t *testing.T) {
	initTestJWT(t)

	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	// Seed a real account so the wrong-password case exists.
	w := postForm(r, "/register", registerForm())
	require.Equal(t, http.StatusFound, w.Code)

	unknownUser := postForm(r, "/login", url.Values{
		"username": {"Nobody"},
		"password": {"password1"},
	})
	wrongPassword := postForm(r, "/login", url.Values{
		"username": {"Alice"},
		"password": {"wrong-password"},
	})

	assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)

	// Neither response may reveal which of user or password was wrong.
	var a, b map[string]string
	require.NoError(t, json.Unmarshal(unknownUser.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &b))
	assert.Equal(t, a["error"], b["error"])
}

func TestLoginSetsSessionCookie(t *testing.T) {
	initTestJWT(t)

	repo := newFakeUserRepo()
	r := newAuthRouter(repo)

	w := postForm(r, "/register", registerForm())
	require.Equal(t, http.StatusFound, w.Code)

	w = postForm(r, "/login", url.Values{
		"username": {"Alice"},
		"password": {"password1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var token string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			token = cookie.Value
		}
	}
	require.NotEmpty(t, token, "login must set the session cookie")

	parsed, err := auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestProfileReturnsCurrentDoctor(t *testing.T) {
	repo := newFakeUserRepo()
	require.NoError(t, repo.Create(&models.User{
		Name:           "Alice",
		Email:          "a@x.com",
		Specialization: "Cardiology",
		Hospital:       "General",
		Contact:        "555-0100",
		PasswordHash:   "x",
	}))

	h := NewAuthHandler(repo)

	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{ID: 1, Name: "Alice", Email: "a@x.com"})
		ctx.Next()
	})
	r.GET("/profile", h.Profile)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User types.UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "Cardiology", resp.User.Specialization)
	assert.Equal(t, "General", resp.User.Hospital)
}

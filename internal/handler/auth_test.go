package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majormofor/money-tracker/internal/config"
	"github.com/majormofor/money-tracker/internal/middleware"
	"github.com/majormofor/money-tracker/internal/store"
)

func authRouter(t *testing.T, st *store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "money-tracker", ExpireHours: 1}

	r := gin.New()
	ah := NewAuthHandler(st, cfg)
	r.POST("/auth/register", ah.Register)
	r.POST("/auth/login", ah.Login)

	protected := r.Group("")
	protected.Use(middleware.Auth(cfg.Secret, st))
	protected.GET("/me", GetMe)
	return r
}

func TestRegisterLoginMe(t *testing.T) {
	st := newTestStore(t)
	r := authRouter(t, st)

	w, env := doJSON(t, r, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"Str0ngPass","confirm_password":"Str0ngPass","currency":"NGN"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, env.Code)

	user := env.Data["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "NGN", user["currency"])

	w, env = doJSON(t, r, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"Str0ngPass"}`)
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := env.Data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestRegisterValidation(t *testing.T) {
	st := newTestStore(t)
	r := authRouter(t, st)

	cases := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"ab","password":"Str0ngPass","confirm_password":"Str0ngPass"}`},
		{"weak password", `{"username":"alice","password":"password","confirm_password":"password"}`},
		{"mismatched confirm", `{"username":"alice","password":"Str0ngPass","confirm_password":"Str0ngPas"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := doJSON(t, r, http.MethodPost, "/auth/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	r := authRouter(t, st)

	_, env := doJSON(t, r, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"Str0ngPass","confirm_password":"Str0ngPass"}`)
	require.Equal(t, 0, env.Code)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/register",
		`{"username":"ALICE","password":"Str0ngPass","confirm_password":"Str0ngPass"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	st := newTestStore(t)
	r := authRouter(t, st)

	_, env := doJSON(t, r, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"Str0ngPass","confirm_password":"Str0ngPass"}`)
	require.Equal(t, 0, env.Code)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"WrongPass1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithoutToken(t *testing.T) {
	st := newTestStore(t)
	r := authRouter(t, st)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeWithQueryToken(t *testing.T) {
	st := newTestStore(t)
	r := authRouter(t, st)

	_, env := doJSON(t, r, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"Str0ngPass","confirm_password":"Str0ngPass"}`)
	require.Equal(t, 0, env.Code)
	_, env = doJSON(t, r, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"Str0ngPass"}`)
	token := env.Data["token"].(string)

	// download endpoints pass the token as a query parameter
	req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

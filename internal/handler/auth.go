package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/majormofor/money-tracker/internal/config"
	"github.com/majormofor/money-tracker/internal/currency"
	"github.com/majormofor/money-tracker/internal/models"
	"github.com/majormofor/money-tracker/internal/store"
	"github.com/majormofor/money-tracker/internal/util"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(st *store.Store, cfg config.JWTConfig) *AuthHandler {
	ttlHours := cfg.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Store:     st,
		JWTSecret: cfg.Secret,
		Issuer:    cfg.Issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

type registerReq struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email,max=128"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Currency        string `json:"currency"` // 3-letter code; unknown falls back to GBP
}

// Register creates a user together with their profile, seeded with the
// preferred display currency.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if !usernameRe.MatchString(req.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			"username must be 3-20 letters, digits or underscores")
		return
	}

	if !isStrongPassword(req.Password) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			"password must be 8-32 characters with upper, lower and digit")
		return
	}
	if req.Password != req.ConfirmPassword {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "passwords do not match")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !currency.Known(code) {
		code = currency.DefaultCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
	}
	if err := h.Store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username already taken")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		}
		return
	}

	// profile with the chosen currency, so reports use it immediately
	profile, err := h.Store.GetOrCreateProfile(user.ID)
	if err == nil && profile.Currency != code {
		_, _ = h.Store.UpdateProfile(user.ID, code, profile.InitialBalance)
	}

	util.Success(c, util.Response{
		"message": "registered",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"currency": code,
		},
	})
}

// isStrongPassword checks for 8-32 chars with upper, lower and digit.
func isStrongPassword(pwd string) bool {
	if len(pwd) < 8 || len(pwd) > 32 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, ch := range pwd {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	user, err := h.Store.UserByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong username or password")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load user")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong username or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to issue token")
		return
	}

	util.Success(c, util.Response{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

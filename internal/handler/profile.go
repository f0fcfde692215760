package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/majormofor/money-tracker/internal/currency"
	"github.com/majormofor/money-tracker/internal/store"
	"github.com/majormofor/money-tracker/internal/util"
)

// ProfileHandler serves the per-user preferences resource.
type ProfileHandler struct {
	Store *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{Store: st}
}

// Get returns the profile, lazily creating the default one.
func (h *ProfileHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.Store.GetOrCreateProfile(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load profile")
		return
	}

	util.Success(c, util.Response{
		"profile": gin.H{
			"currency":        profile.Currency,
			"symbol":          currency.Symbol(profile.Currency),
			"initial_balance": profile.InitialBalance.StringFixed(2),
		},
		"currencies": currency.Choices(),
	})
}

type updateProfileReq struct {
	Currency       string `json:"currency" binding:"required"`
	InitialBalance string `json:"initial_balance"`
}

// Update stores a new currency preference and initial balance.
func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !currency.Known(code) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unsupported currency code")
		return
	}

	balance := decimal.Zero
	if req.InitialBalance != "" {
		parsed, err := decimal.NewFromString(req.InitialBalance)
		if err != nil || parsed.IsNegative() {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
				"initial balance must be a non-negative amount")
			return
		}
		balance = parsed
	} else {
		if existing, err := h.Store.GetOrCreateProfile(user.ID); err == nil {
			balance = existing.InitialBalance
		}
	}

	profile, err := h.Store.UpdateProfile(user.ID, code, balance)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save profile")
		return
	}

	util.Success(c, util.Response{
		"profile": gin.H{
			"currency":        profile.Currency,
			"symbol":          currency.Symbol(profile.Currency),
			"initial_balance": profile.InitialBalance.StringFixed(2),
		},
	})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// ChangePassword rotates the current user's password.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "old password is wrong")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	if err := h.Store.UpdatePassword(user.ID, string(hash)); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save password")
		return
	}

	util.Success(c, util.Response{
		"message": "password changed, sign in again with the new password",
	})
}

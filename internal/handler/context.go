package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majormofor/money-tracker/internal/middleware"
	"github.com/majormofor/money-tracker/internal/models"
	"github.com/majormofor/money-tracker/internal/util"
)

// currentUser pulls the authenticated user set by the auth middleware.
// When absent it writes the 401 envelope and reports false.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return nil, false
	}
	return user, true
}

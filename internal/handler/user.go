package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/majormofor/money-tracker/internal/util"
)

// GetMe returns the current signed-in user.
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

package handlers

import (
	"net/http"

	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/coverdesk/claims-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthStatusHandler reports who the token belongs to, for the frontend's
// session check on load.
func AuthStatusHandler(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":   sess.UserID,
		"username": sess.Username,
		"role":     sess.Role,
	})
}

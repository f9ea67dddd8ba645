package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/runforua/donorboard/internal/config"
	ierr "github.com/runforua/donorboard/internal/errors"
)

// ViewerPasswordHeader carries the shared dashboard password.
const ViewerPasswordHeader = "x-viewer-password"

// ViewerAuth gates the report surface behind the shared viewer password.
// Every report consumer presents the same credential; there are no user
// accounts.
func ViewerAuth(cfg *config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(ViewerPasswordHeader)
		if supplied == "" {
			supplied = c.Query("password")
		}

		if subtle.ConstantTimeCompare([]byte(supplied), []byte(cfg.Auth.ViewerPassword)) != 1 {
			c.AbortWithStatusJSON(ierr.HTTPStatusFromErr(ierr.ErrPermissionDenied), ErrorResponse{
				Success: false,
				Error:   ErrorDetail{Display: "Invalid viewer password"},
			})
			return
		}

		c.Next()
	}
}

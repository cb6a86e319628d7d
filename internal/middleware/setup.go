package middleware

import (
	"net/http"

	"costr/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupChecker reports whether first-run setup has completed
type SetupChecker interface {
	IsSetupComplete() bool
}

// RequireSetup refuses requests with 428 Precondition Required until setup is complete
func RequireSetup(settings SetupChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !settings.IsSetupComplete() {
			c.AbortWithStatusJSON(http.StatusPreconditionRequired,
				response.Error(http.StatusPreconditionRequired, "Complete the initial setup first"))
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamebook/gamebook-api/internal/domain/repository"
)

// Maintenance gates every request behind the system status switch. While the
// switch is off the route answers 503 with the stored reason. Login, health
// and the admin status routes are mounted outside this middleware so an
// admin can always turn the system back on.
func Maintenance(systemRepo repository.SystemStatusRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := systemRepo.Get(c.Request.Context())
		if err != nil {
			// Status lookup errors fail open
			c.Next()
			return
		}

		if !status.Enabled {
			reason := status.Reason
			if reason == "" {
				reason = "The system is temporarily unavailable"
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": reason,
			})
			return
		}

		c.Next()
	}
}

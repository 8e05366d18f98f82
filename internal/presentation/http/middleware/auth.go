package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infraRepo "github.com/gamebook/gamebook-api/internal/infrastructure/repository"
	"github.com/gamebook/gamebook-api/internal/presentation/http/dto/response"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. For vendor tokens
// the vendor ID is also placed on the request context so repository queries
// are scoped to it.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("subject_id", claims.SubjectID)
		c.Set("role", claims.Role)
		c.Set("subject_name", claims.Name)

		if claims.Role == utils.RoleVendor {
			ctx := infraRepo.WithVendor(c.Request.Context(), claims.SubjectID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		role, ok := roleVal.(string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, required := range roles {
			if role == required {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}

// GetSubjectID extracts the authenticated subject ID from the Gin context
func GetSubjectID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("subject_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetRole extracts the authenticated role from the Gin context
func GetRole(c *gin.Context) string {
	val, exists := c.Get("role")
	if !exists {
		return ""
	}
	role, _ := val.(string)
	return role
}

// GetSubjectName extracts the subject's display name from the Gin context
func GetSubjectName(c *gin.Context) string {
	val, exists := c.Get("subject_name")
	if !exists {
		return ""
	}
	name, _ := val.(string)
	return name
}

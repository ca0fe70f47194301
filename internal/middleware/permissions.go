package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/models"
)

// Permission names an action a route requires. The policy table below maps
// each permission to the roles allowed to perform it; routes declare a
// permission instead of an inline role list.
type Permission string

const (
	PermManageEmployees Permission = "employees:manage"
	PermViewUsers       Permission = "users:view"
)

var policy = map[Permission][]models.Role{
	PermManageEmployees: {models.RoleAdmin, models.RoleHR},
	PermViewUsers:       {models.RoleAdmin},
}

// Require gates a route on the policy entry for perm. It assumes RequireAuth
// ran earlier in the chain; a missing identity answers 401 rather than 403 so
// a misordered chain fails closed.
func Require(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			apierrors.Unauthorized(c, "Access denied. Please login to continue.")
			c.Abort()
			return
		}

		if claims.Role == "" {
			apierrors.Forbidden(c, "Access denied. User role not found.")
			c.Abort()
			return
		}

		allowed, ok := policy[perm]
		if !ok {
			apierrors.Forbidden(c, "Access denied.")
			c.Abort()
			return
		}

		for _, role := range allowed {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		names := make([]string, len(allowed))
		for i, role := range allowed {
			names[i] = string(role)
		}
		apierrors.Forbidden(c, fmt.Sprintf("Access denied. This action requires %s privileges.", strings.Join(names, " or ")))
		c.Abort()
	}
}

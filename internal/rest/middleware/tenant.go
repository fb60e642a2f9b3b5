package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
)

// TenantMiddleware resolves the tenant from the X-Tenant-ID header and stores
// it in the request context. Requests without the header fall back to the
// default tenant; a malformed header is rejected outright.
func TenantMiddleware(c *gin.Context) {
	tenantID := types.DefaultTenantID

	if raw := c.GetHeader(types.HeaderTenantID); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.Error(ierr.NewError("invalid tenant header").
				WithHint("X-Tenant-ID must be a positive integer").
				Mark(ierr.ErrValidation))
			c.Abort()
			return
		}
		tenantID = parsed
	}

	c.Request = c.Request.WithContext(types.SetTenantID(c.Request.Context(), tenantID))

	c.Next()
}

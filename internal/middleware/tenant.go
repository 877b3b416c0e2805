package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/docvisit/practice-api/internal/handler"
	"github.com/docvisit/practice-api/internal/tenant"
)

const (
	HeaderTenantID  = "X-TenantID"
	ContextTenantID = "tenant_id"
)

// TenantFilter rejects requests whose X-TenantID header is absent,
// multi-valued or unknown before any handler runs, and installs the tenant
// id on the request context for everything downstream.
func TenantFilter(registry *tenant.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		values := c.Request.Header.Values(HeaderTenantID)
		if len(values) != 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				handler.NewErrorResponse("exactly one X-TenantID header is required"))
			return
		}

		id := values[0]
		if !registry.Has(id) {
			log.Warn().Str("tenant", id).Str("path", c.Request.URL.Path).Msg("rejected unknown tenant")
			c.AbortWithStatusJSON(http.StatusBadRequest,
				handler.NewErrorResponse("unknown tenant"))
			return
		}

		c.Set(ContextTenantID, id)
		c.Request = c.Request.WithContext(tenant.WithID(c.Request.Context(), id))
		c.Next()
	}
}

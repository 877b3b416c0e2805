package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/docvisit/practice-api/internal/config"
	"github.com/docvisit/practice-api/internal/tenant"
)

func newTenantRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := tenant.NewRegistry(map[string]config.TenantConfig{
		"tenantA": {},
		"tenantB": {},
	})

	r := gin.New()
	r.Use(TenantFilter(registry))
	r.GET("/probe", func(c *gin.Context) {
		id, ok := tenant.ID(c.Request.Context())
		if !ok {
			c.String(http.StatusInternalServerError, "no tenant on context")
			return
		}
		c.String(http.StatusOK, id)
	})
	return r
}

func TestTenantFilterMissingHeader(t *testing.T) {
	r := newTenantRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantFilterMultipleHeaders(t *testing.T) {
	r := newTenantRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Add("X-TenantID", "tenantA")
	req.Header.Add("X-TenantID", "tenantB")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantFilterUnknownTenant(t *testing.T) {
	r := newTenantRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-TenantID", "unknown")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown tenant")
}

func TestTenantFilterPropagatesToContext(t *testing.T) {
	r := newTenantRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-TenantID", "tenantA")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenantA", w.Body.String())
}

func TestTenantFilterConcurrentRequestsDoNotLeak(t *testing.T) {
	r := newTenantRouter(t)

	done := make(chan struct{})
	for _, id := range []string{"tenantA", "tenantB"} {
		id := id
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				w := httptest.NewRecorder()
				req := httptest.NewRequest("GET", "/probe", nil)
				req.Header.Set("X-TenantID", id)
				r.ServeHTTP(w, req)
				assert.Equal(t, id, w.Body.String())
			}
		}()
	}
	<-done
	<-done
}

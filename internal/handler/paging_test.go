package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pagingContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/doctors/paged?"+rawQuery, nil)
	return c
}

func TestPageParamsDefaults(t *testing.T) {
	page, size := PageParams(pagingContext(t, ""))
	assert.Equal(t, 0, page)
	assert.Equal(t, 10, size)
}

func TestPageParamsExplicit(t *testing.T) {
	page, size := PageParams(pagingContext(t, "page=3&size=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)
}

// Non-numeric values are treated as absent, not as errors.
func TestPageParamsNonNumeric(t *testing.T) {
	page, size := PageParams(pagingContext(t, "page=abc&size=xyz"))
	assert.Equal(t, 0, page)
	assert.Equal(t, 10, size)
}

func TestPageParamsNegativeClamped(t *testing.T) {
	page, size := PageParams(pagingContext(t, "page=-1&size=-5"))
	assert.Equal(t, 0, page)
	assert.Equal(t, 10, size)
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "17"}}

	id, ok := PathID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(17), id)

	c.Params = gin.Params{{Key: "id", Value: "seventeen"}}
	_, ok = PathID(c)
	assert.False(t, ok)
}

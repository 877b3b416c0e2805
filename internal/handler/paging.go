package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 0
	DefaultSize = 10
)

// PageParams reads the page/size query parameters. Absent or non-numeric
// values fall back to the defaults rather than failing the request.
func PageParams(c *gin.Context) (page, size int) {
	page = intQuery(c, "page", DefaultPage)
	size = intQuery(c, "size", DefaultSize)
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	return page, size
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// PathID parses the numeric {id} path parameter.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

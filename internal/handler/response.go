package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes the response for a failed service call. Business errors carry
// their own status; anything else is a 500 and the message is not leaked.
func Error(c *gin.Context, err error) {
	c.Error(err)

	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		c.JSON(coded.StatusCode(), NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal error"))
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The error body mirrors the deployed contract: a single "detail" field.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{Detail: detail})
}

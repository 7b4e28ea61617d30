package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends 400 with err's message.
func Error(c *gin.Context, err error, data map[string]any) {
	c.JSON(http.StatusBadRequest, Resp{ErrorCode: CodeBadRequest, Message: err.Error(), Data: data})
}

// InternalError sends 500. err is never exposed to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{ErrorCode: CodeInternal, Message: DefaultErrorMessage})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{ErrorCode: CodeNotFound, Message: message})
}

// Unauthorized and TooManyRequests are sent from middleware and stop the
// handler chain.

func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{ErrorCode: CodeUnauthorized, Message: "Unauthorized"})
}

func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{ErrorCode: CodeTooManyRequests, Message: "Too many requests"})
}

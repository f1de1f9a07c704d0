package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// Success writes data as the response body.
func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

func errorBody(ctx *gin.Context, message string, details any) ErrorBody {
	return ErrorBody{
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Details:   details,
	}
}

// Error writes an error body. details is omitted when nil.
func Error(ctx *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, errorBody(ctx, message, details))
}

// Abort writes an error body and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, errorBody(ctx, message, nil))
}

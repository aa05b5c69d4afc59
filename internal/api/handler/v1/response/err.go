package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error body. The HTTP status lives outside the
// payload; ErrorCode is a stable machine readable tag.
type Err struct {
	statusCode int

	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.ErrorCode, e.ErrorMsg)
}

func NewErr(statusCode int, errorCode, errorMsg string) *Err {
	return &Err{
		statusCode: statusCode,
		ErrorCode:  errorCode,
		ErrorMsg:   errorMsg,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, "BAD_REQUEST", err.Error())
}

func ErrNotFound(item, key string, value any) *Err {
	return NewErr(http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("%v with %v %v is not found", item, key, value))
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, "CONFLICT", err.Error())
}

func ErrPermissionDenied(err error) *Err {
	return NewErr(http.StatusForbidden, "PERMISSION_DENIED", err.Error())
}

func ErrInternalServerError(err error) *Err {
	// The caller's wrapped error goes to the log, not the client.
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.statusCode, err)
}
